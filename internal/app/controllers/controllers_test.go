package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresq/gradebook/internal/app/controllers"
	"github.com/andresq/gradebook/internal/app/models"
	"github.com/andresq/gradebook/internal/app/repositories"
	"github.com/andresq/gradebook/internal/app/routes"
	"github.com/andresq/gradebook/internal/app/services"
	"github.com/andresq/gradebook/internal/pkg/auth"
)

// memStore is an in-memory stand-in for the four repositories. It mirrors
// the schema semantics the handlers rely on, including cascade deletes.
type memStore struct {
	users    []*models.User
	subjects []*models.Subject
	students []*models.Student
	grades   []*models.Grade
	nextID   map[string]int64
}

func newMemStore() *memStore {
	return &memStore{nextID: map[string]int64{"user": 1, "subject": 1, "student": 1, "grade": 1}}
}

func (m *memStore) id(kind string) int64 {
	id := m.nextID[kind]
	m.nextID[kind]++
	return id
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Identifier == user.Identifier {
			return 0, repositories.ErrDuplicate
		}
	}
	u := *user
	u.ID = m.id("user")
	m.users = append(m.users, &u)
	return u.ID, nil
}

func (m *memStore) GetUserByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range m.users {
		if u.Identifier == identifier {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memStore) GetAllUsers(_ context.Context) ([]*models.User, error) {
	users := []*models.User{}
	for _, u := range m.users {
		public := *u
		public.Password = ""
		users = append(users, &public)
	}
	return users, nil
}

func (m *memStore) DeleteUser(_ context.Context, id int64) error {
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) CreateSubject(_ context.Context, subject *models.Subject) (int64, error) {
	s := *subject
	s.ID = m.id("subject")
	m.subjects = append(m.subjects, &s)
	return s.ID, nil
}

func (m *memStore) GetAllSubjects(_ context.Context) ([]*models.Subject, error) {
	return m.subjects, nil
}

func (m *memStore) DeleteSubject(_ context.Context, id int64) error {
	for i, s := range m.subjects {
		if s.ID == id {
			m.subjects = append(m.subjects[:i], m.subjects[i+1:]...)
			break
		}
	}
	m.cascadeGrades(func(g *models.Grade) bool { return g.SubjectID == id })
	return nil
}

func (m *memStore) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	s := *student
	s.ID = m.id("student")
	m.students = append(m.students, &s)
	return s.ID, nil
}

func (m *memStore) GetAllStudents(_ context.Context) ([]*models.Student, error) {
	return m.students, nil
}

func (m *memStore) DeleteStudent(_ context.Context, id int64) error {
	for i, s := range m.students {
		if s.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			break
		}
	}
	m.cascadeGrades(func(g *models.Grade) bool { return g.StudentID == id })
	return nil
}

func (m *memStore) cascadeGrades(match func(*models.Grade) bool) {
	kept := m.grades[:0]
	for _, g := range m.grades {
		if !match(g) {
			kept = append(kept, g)
		}
	}
	m.grades = kept
}

func (m *memStore) CreateGrade(_ context.Context, grade *models.Grade) (int64, error) {
	if m.findStudent(grade.StudentID) == nil || m.findSubject(grade.SubjectID) == nil {
		return 0, repositories.ErrMissingReference
	}
	g := *grade
	g.ID = m.id("grade")
	m.grades = append(m.grades, &g)
	return g.ID, nil
}

func (m *memStore) GetAllGrades(_ context.Context) ([]*models.GradeRow, error) {
	rows := []*models.GradeRow{}
	for _, g := range m.grades {
		rows = append(rows, &models.GradeRow{
			ID:      g.ID,
			Student: m.findStudent(g.StudentID).Name,
			Subject: m.findSubject(g.SubjectID).Name,
			Value:   g.Value,
		})
	}
	return rows, nil
}

func (m *memStore) DeleteGrade(_ context.Context, id int64) error {
	for i, g := range m.grades {
		if g.ID == id {
			m.grades = append(m.grades[:i], m.grades[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) findStudent(id int64) *models.Student {
	for _, s := range m.students {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (m *memStore) findSubject(id int64) *models.Subject {
	for _, s := range m.subjects {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(services.NewAuthService(store)),
		controllers.NewUserController(services.NewUserService(store)),
		controllers.NewSubjectController(services.NewSubjectService(store)),
		controllers.NewStudentController(services.NewStudentService(store)),
		controllers.NewGradeController(services.NewGradeService(store)),
	)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func seedAdmin(t *testing.T, store *memStore) {
	t.Helper()
	hash, err := auth.HashPassword("1234")
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), &models.User{
		Identifier: "123456789",
		Name:       "Andres",
		Password:   hash,
		Role:       models.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestLoginEndpoint(t *testing.T) {
	router, store := setupRouter(t)
	seedAdmin(t, store)

	rr := doJSON(t, router, http.MethodPost, "/login", gin.H{"identifier": "123456789", "secret": "1234"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message string `json:"message"`
		Profile struct {
			ID         int64  `json:"id"`
			Identifier string `json:"identifier"`
			Name       string `json:"name"`
			Role       string `json:"role"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Andres", resp.Profile.Name)
	assert.Equal(t, "admin", resp.Profile.Role)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = doJSON(t, router, http.MethodPost, "/login", gin.H{"identifier": "123456789", "secret": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/login", gin.H{"identifier": "000", "secret": "1234"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/login", gin.H{"identifier": "123456789"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUserEndpoints(t *testing.T) {
	router, _ := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/usuarios", gin.H{"identifier": "42", "name": "Ana", "secret": "pw"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "message")

	// Duplicate identifier gets its own 400
	rr = doJSON(t, router, http.MethodPost, "/usuarios", gin.H{"identifier": "42", "name": "Other", "secret": "x"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "identifier already registered")

	rr = doJSON(t, router, http.MethodPost, "/usuarios", gin.H{"identifier": "43"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/usuarios", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "42", users[0]["identifier"])
	assert.Equal(t, "user", users[0]["role"])
	assert.NotContains(t, users[0], "password")

	rr = doJSON(t, router, http.MethodDelete, "/usuarios/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Deleting a nonexistent id is still success
	rr = doJSON(t, router, http.MethodDelete, "/usuarios/999", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodDelete, "/usuarios/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGradeEndToEnd(t *testing.T) {
	router, _ := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/materias", gin.H{"code": "MAT101", "name": "Math"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/estudiantes", gin.H{"identifier": "1", "name": "Ana"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/notas", gin.H{"student_id": 1, "subject_id": 1, "value": 4.5})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/notas", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["student"])
	assert.Equal(t, "Math", rows[0]["subject"])
	assert.Equal(t, 4.5, rows[0]["value"])
}

func TestGradeValidation(t *testing.T) {
	router, _ := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/notas", gin.H{"student_id": 1, "subject_id": 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Referencing missing rows is a client error, not a 500
	rr = doJSON(t, router, http.MethodPost, "/notas", gin.H{"student_id": 9, "subject_id": 9, "value": 3.0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCascadeDeletes(t *testing.T) {
	router, _ := setupRouter(t)

	doJSON(t, router, http.MethodPost, "/materias", gin.H{"code": "MAT101", "name": "Math"})
	doJSON(t, router, http.MethodPost, "/estudiantes", gin.H{"identifier": "1", "name": "Ana"})
	doJSON(t, router, http.MethodPost, "/notas", gin.H{"student_id": 1, "subject_id": 1, "value": 4.5})

	rr := doJSON(t, router, http.MethodDelete, "/materias/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/notas", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	assert.Empty(t, rows)
}
