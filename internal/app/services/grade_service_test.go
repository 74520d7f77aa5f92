package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/models/dto"
	"github.com/andresq/gradebook/internal/app/repositories"
	"github.com/andresq/gradebook/internal/app/services"
	"github.com/andresq/gradebook/internal/pkg/apperrors"
)

// fakeGradeStore simulates the notas table with its foreign keys
type fakeGradeStore struct {
	students map[int64]string
	subjects map[int64]string
	grades   []*models.Grade
	nextID   int64
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{
		students: map[int64]string{},
		subjects: map[int64]string{},
		nextID:   1,
	}
}

func (f *fakeGradeStore) CreateGrade(_ context.Context, grade *models.Grade) (int64, error) {
	if _, ok := f.students[grade.StudentID]; !ok {
		return 0, repositories.ErrMissingReference
	}
	if _, ok := f.subjects[grade.SubjectID]; !ok {
		return 0, repositories.ErrMissingReference
	}
	g := *grade
	g.ID = f.nextID
	f.nextID++
	f.grades = append(f.grades, &g)
	return g.ID, nil
}

func (f *fakeGradeStore) GetAllGrades(_ context.Context) ([]*models.GradeRow, error) {
	rows := []*models.GradeRow{}
	for _, g := range f.grades {
		rows = append(rows, &models.GradeRow{
			ID:      g.ID,
			Student: f.students[g.StudentID],
			Subject: f.subjects[g.SubjectID],
			Value:   g.Value,
		})
	}
	return rows, nil
}

func (f *fakeGradeStore) DeleteGrade(_ context.Context, id int64) error {
	for i, g := range f.grades {
		if g.ID == id {
			f.grades = append(f.grades[:i], f.grades[i+1:]...)
			return nil
		}
	}
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateGradeAndListJoined(t *testing.T) {
	store := newFakeGradeStore()
	store.students[1] = "Ana"
	store.subjects[1] = "Math"
	svc := services.NewGradeService(store)

	err := svc.CreateGrade(context.Background(), &dto.CreateGradeRequest{
		StudentID: 1,
		SubjectID: 1,
		Value:     floatPtr(4.5),
	})
	require.NoError(t, err)

	rows, err := svc.GetAllGrades(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Student)
	assert.Equal(t, "Math", rows[0].Subject)
	assert.Equal(t, 4.5, rows[0].Value)
}

func TestCreateGradeMissingReference(t *testing.T) {
	store := newFakeGradeStore()
	store.students[1] = "Ana"
	svc := services.NewGradeService(store)

	err := svc.CreateGrade(context.Background(), &dto.CreateGradeRequest{
		StudentID: 1,
		SubjectID: 99,
		Value:     floatPtr(3.0),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateGradeMissingFields(t *testing.T) {
	svc := services.NewGradeService(newFakeGradeStore())

	tests := []struct {
		name string
		req  dto.CreateGradeRequest
	}{
		{"missing student_id", dto.CreateGradeRequest{SubjectID: 1, Value: floatPtr(3.0)}},
		{"missing subject_id", dto.CreateGradeRequest{StudentID: 1, Value: floatPtr(3.0)}},
		{"missing value", dto.CreateGradeRequest{StudentID: 1, SubjectID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateGrade(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateGradeZeroValueIsValid(t *testing.T) {
	store := newFakeGradeStore()
	store.students[1] = "Ana"
	store.subjects[1] = "Math"
	svc := services.NewGradeService(store)

	err := svc.CreateGrade(context.Background(), &dto.CreateGradeRequest{
		StudentID: 1,
		SubjectID: 1,
		Value:     floatPtr(0),
	})
	assert.NoError(t, err)
}

func TestDeleteGradeRemovesOnlyThatRow(t *testing.T) {
	store := newFakeGradeStore()
	store.students[1] = "Ana"
	store.subjects[1] = "Math"
	svc := services.NewGradeService(store)

	require.NoError(t, svc.CreateGrade(context.Background(), &dto.CreateGradeRequest{StudentID: 1, SubjectID: 1, Value: floatPtr(4.5)}))
	require.NoError(t, svc.CreateGrade(context.Background(), &dto.CreateGradeRequest{StudentID: 1, SubjectID: 1, Value: floatPtr(2.5)}))

	require.NoError(t, svc.DeleteGrade(context.Background(), 1))

	rows, err := svc.GetAllGrades(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
}
