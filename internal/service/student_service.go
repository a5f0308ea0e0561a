package service

import (
	"context"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/repository"
)

type StudentService struct {
	studentRepo    *repository.StudentRepository
	enrollmentRepo *repository.EnrollmentRepository
}

func NewStudentService(studentRepo *repository.StudentRepository, enrollmentRepo *repository.EnrollmentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, enrollmentRepo: enrollmentRepo}
}

func (s *StudentService) GetAll(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Create(ctx, st)
}

func (s *StudentService) Update(ctx context.Context, st *model.Student) error {
	return s.studentRepo.Update(ctx, st)
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}

// SetEnrollments replaces the course set a student is sitting.
func (s *StudentService) SetEnrollments(ctx context.Context, studentID int, courseIDs []int) error {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return err
	}
	return s.enrollmentRepo.SetForStudent(ctx, studentID, courseIDs)
}

func (s *StudentService) GetEnrollments(ctx context.Context, studentID int) ([]model.Enrollment, error) {
	return s.enrollmentRepo.GetByStudent(ctx, studentID)
}
