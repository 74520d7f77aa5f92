package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
)

// SubjectStore is the persistence surface the subject service needs
type SubjectStore interface {
	CreateSubject(ctx context.Context, subject *models.Subject) (int64, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

// SubjectService defines the interface for subject-related operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) error
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjectStore SubjectStore
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectStore SubjectStore) SubjectService {
	return &subjectServiceImpl{subjectStore: subjectStore}
}

// CreateSubject validates and inserts a subject
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	subject := &models.Subject{Code: req.Code, Name: req.Name}
	if _, err := s.subjectStore.CreateSubject(ctx, subject); err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	subjects, err := s.subjectStore.GetAllSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving subjects: %w", err)
	}
	return subjects, nil
}

// DeleteSubject removes a subject by id; dependent grades cascade away
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	if err := s.subjectStore.DeleteSubject(ctx, id); err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	return nil
}
