package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	SubjectRepository *SubjectRepository
	StudentRepository *StudentRepository
	GradeRepository   *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		SubjectRepository: NewSubjectRepository(db),
		StudentRepository: NewStudentRepository(db),
		GradeRepository:   NewGradeRepository(db),
	}
}
