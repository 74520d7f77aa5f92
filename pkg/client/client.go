// Package client is a thin data access layer over the gradebook HTTP API.
// It serializes requests, decodes JSON responses and propagates transport and
// decode failures unmodified. It performs no retries and holds no cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client calls the gradebook API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API served at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response. The server message is carried as-is; the
// caller branches on StatusCode.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Profile is the public projection of an authenticated user.
type Profile struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

// User is a row of the user listing. The credential hash is never included.
type User struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

// Subject is a row of the subject listing.
type Subject struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Student is a row of the student listing.
type Student struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// GradeRow is a row of the joined grade listing.
type GradeRow struct {
	ID      int64   `json:"id"`
	Student string  `json:"student"`
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}

// Login verifies credentials and returns the profile.
func (c *Client) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	body := map[string]string{"identifier": identifier, "secret": secret}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, identifier, name, secret string) error {
	body := map[string]string{"identifier": identifier, "name": name, "secret": secret}
	return c.do(ctx, http.MethodPost, "/usuarios", body, nil)
}

// ListUsers returns all users ordered by id.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/usuarios", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}

// CreateSubject creates a new subject.
func (c *Client) CreateSubject(ctx context.Context, code, name string) error {
	body := map[string]string{"code": code, "name": name}
	return c.do(ctx, http.MethodPost, "/materias", body, nil)
}

// ListSubjects returns all subjects ordered by id.
func (c *Client) ListSubjects(ctx context.Context) ([]Subject, error) {
	var subjects []Subject
	if err := c.do(ctx, http.MethodGet, "/materias", nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// DeleteSubject removes a subject by id; its grades go with it.
func (c *Client) DeleteSubject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/materias/%d", id), nil, nil)
}

// CreateStudent creates a new student.
func (c *Client) CreateStudent(ctx context.Context, identifier, name string) error {
	body := map[string]string{"identifier": identifier, "name": name}
	return c.do(ctx, http.MethodPost, "/estudiantes", body, nil)
}

// ListStudents returns all students ordered by id.
func (c *Client) ListStudents(ctx context.Context) ([]Student, error) {
	var students []Student
	if err := c.do(ctx, http.MethodGet, "/estudiantes", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// DeleteStudent removes a student by id; its grades go with it.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/estudiantes/%d", id), nil, nil)
}

// CreateGrade records a grade for a student in a subject.
func (c *Client) CreateGrade(ctx context.Context, studentID, subjectID int64, value float64) error {
	body := map[string]interface{}{
		"student_id": studentID,
		"subject_id": subjectID,
		"value":      value,
	}
	return c.do(ctx, http.MethodPost, "/notas", body, nil)
}

// ListGrades returns the joined grade projection ordered by id.
func (c *Client) ListGrades(ctx context.Context) ([]GradeRow, error) {
	var grades []GradeRow
	if err := c.do(ctx, http.MethodGet, "/notas", nil, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// DeleteGrade removes a single grade by id.
func (c *Client) DeleteGrade(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notas/%d", id), nil, nil)
}

// do performs one request round trip. A non-2xx status becomes an *APIError
// carrying the server message; transport and decode errors pass through.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
