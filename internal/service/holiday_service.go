package service

import (
	"context"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
)

type HolidayService struct {
	holidayRepo *repository.HolidayRepository
}

func NewHolidayService(holidayRepo *repository.HolidayRepository) *HolidayService {
	return &HolidayService{holidayRepo: holidayRepo}
}

func (s *HolidayService) GetAll(ctx context.Context) ([]model.Holiday, error) {
	return s.holidayRepo.GetAll(ctx)
}

func (s *HolidayService) Create(ctx context.Context, h *model.Holiday) error {
	return s.holidayRepo.Create(ctx, h)
}

func (s *HolidayService) Delete(ctx context.Context, id int) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *HolidayService) GetDates(ctx context.Context) ([]time.Time, error) {
	return s.holidayRepo.GetDates(ctx)
}
