package service

import (
	"context"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
)

type VenueService struct {
	venueRepo *repository.VenueRepository
}

func NewVenueService(venueRepo *repository.VenueRepository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

func (s *VenueService) GetAll(ctx context.Context) ([]model.Venue, error) {
	return s.venueRepo.GetAll(ctx)
}

func (s *VenueService) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	return s.venueRepo.GetByID(ctx, id)
}

func (s *VenueService) Create(ctx context.Context, v *model.Venue) error {
	return s.venueRepo.Create(ctx, v)
}

func (s *VenueService) Update(ctx context.Context, v *model.Venue) error {
	return s.venueRepo.Update(ctx, v)
}

func (s *VenueService) Delete(ctx context.Context, id int) error {
	return s.venueRepo.Delete(ctx, id)
}
