package service

import (
	"context"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
	"github.com/rs/zerolog"
)

type CourseService struct {
	courseRepo *repository.CourseRepository
	log        zerolog.Logger
}

func NewCourseService(courseRepo *repository.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

func (s *CourseService) GetAll(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	if c.GapDays <= 0 {
		c.GapDays = 2
	}
	return s.courseRepo.Create(ctx, c)
}

func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	if c.GapDays <= 0 {
		c.GapDays = 2
	}
	return s.courseRepo.Update(ctx, c)
}

func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}
