package services

import (
	"context"

	"github.com/skhostel/hostelpay/internal/app/models/dto"
	"github.com/skhostel/hostelpay/internal/app/repositories"
)

// StudentService serves admin-facing student reads.
type StudentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// ListStudents returns all registered students.
func (s *StudentService) ListStudents(ctx context.Context) (dto.StudentListResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return dto.StudentListResponse{}, err
	}
	return dto.NewStudentListResponse(students), nil
}

// GetStudent returns a single student by id.
func (s *StudentService) GetStudent(ctx context.Context, id int64) (dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}
