package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
)

// StudentStore is the persistence surface the student service needs
type StudentStore interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentStore StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore) StudentService {
	return &studentServiceImpl{studentStore: studentStore}
}

// CreateStudent validates and inserts a student. The cedula is deliberately
// not checked for uniqueness; the schema carries no such constraint.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error {
	if strings.TrimSpace(req.Identifier) == "" {
		return fmt.Errorf("%w: identifier is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	student := &models.Student{Identifier: req.Identifier, Name: req.Name}
	if _, err := s.studentStore.CreateStudent(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentStore.GetAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// DeleteStudent removes a student by id; dependent grades cascade away
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentStore.DeleteStudent(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
