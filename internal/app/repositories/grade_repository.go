package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateGrade inserts a new grade row. Inserts referencing a missing student
// or subject surface as ErrMissingReference.
func (r *GradeRepository) CreateGrade(ctx context.Context, grade *models.Grade) (int64, error) {
	sql, args, err := r.sb.Insert("notas").
		Columns("estudiante_id", "materia_id", "valor").
		Values(grade.StudentID, grade.SubjectID, grade.Value).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create grade SQL")
		return 0, fmt.Errorf("failed to build create grade query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isForeignKeyError(err) {
			return 0, ErrMissingReference
		}
		logger.Error().Err(err).Msg("Error executing create grade query")
		return 0, fmt.Errorf("error creating grade: %w", err)
	}

	return id, nil
}

// GetAllGrades retrieves the joined grade projection ordered by grade id:
// the student and subject names rather than their ids.
func (r *GradeRepository) GetAllGrades(ctx context.Context) ([]*models.GradeRow, error) {
	sql, args, err := r.sb.Select("n.id", "e.nombre AS estudiante", "m.nombre AS materia", "n.valor").
		From("notas n").
		Join("estudiantes e ON n.estudiante_id = e.id").
		Join("materias m ON n.materia_id = m.id").
		OrderBy("n.id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all grades SQL")
		return nil, fmt.Errorf("failed to build get all grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all grades query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := []*models.GradeRow{}
	for rows.Next() {
		grade := &models.GradeRow{}
		if err := rows.Scan(&grade.ID, &grade.Student, &grade.Subject, &grade.Value); err != nil {
			logger.Error().Err(err).Msg("Error scanning grade row during get all")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// DeleteGrade deletes a grade by id. A nonexistent id is a no-op.
func (r *GradeRepository) DeleteGrade(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("notas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete grade SQL")
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("gradeID", id).Msg("Error executing delete grade query")
		return fmt.Errorf("error deleting grade: %w", err)
	}

	return nil
}
