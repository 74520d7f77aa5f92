package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/app/repositories"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
)

// GradeStore is the persistence surface the grade service needs
type GradeStore interface {
	CreateGrade(ctx context.Context, grade *models.Grade) (int64, error)
	GetAllGrades(ctx context.Context) ([]*models.GradeRow, error)
	DeleteGrade(ctx context.Context, id int64) error
}

// GradeService defines the interface for grade-related operations
type GradeService interface {
	CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) error
	GetAllGrades(ctx context.Context) ([]*models.GradeRow, error)
	DeleteGrade(ctx context.Context, id int64) error
}

type gradeServiceImpl struct {
	gradeStore GradeStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeStore GradeStore) GradeService {
	return &gradeServiceImpl{gradeStore: gradeStore}
}

// CreateGrade validates and inserts a grade. The referenced student and
// subject must exist; the foreign keys enforce it at insert time.
func (s *gradeServiceImpl) CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) error {
	if req.StudentID <= 0 {
		return fmt.Errorf("%w: student_id is required", apperrors.ErrValidationFailed)
	}
	if req.SubjectID <= 0 {
		return fmt.Errorf("%w: subject_id is required", apperrors.ErrValidationFailed)
	}
	if req.Value == nil {
		return fmt.Errorf("%w: value is required", apperrors.ErrValidationFailed)
	}

	grade := &models.Grade{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Value:     *req.Value,
	}

	if _, err := s.gradeStore.CreateGrade(ctx, grade); err != nil {
		if errors.Is(err, repositories.ErrMissingReference) {
			return fmt.Errorf("%w: referenced student or subject does not exist", apperrors.ErrBadRequest)
		}
		return fmt.Errorf("error creating grade: %w", err)
	}
	return nil
}

// GetAllGrades retrieves the joined grade projection
func (s *gradeServiceImpl) GetAllGrades(ctx context.Context) ([]*models.GradeRow, error) {
	grades, err := s.gradeStore.GetAllGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grades: %w", err)
	}
	return grades, nil
}

// DeleteGrade removes a single grade by id
func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id int64) error {
	if err := s.gradeStore.DeleteGrade(ctx, id); err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	return nil
}
