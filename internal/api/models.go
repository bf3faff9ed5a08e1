package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// TaskRequest is the body accepted by create and update.
type TaskRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	DueDate     *DateTime `json:"dueDate"`
	Status      string    `json:"status"      validate:"omitempty,max=32"`
}

// ToDomain converts the request into the task fields it carries.
func (r TaskRequest) ToDomain() domain.Task {
	task := domain.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      domain.TaskStatus(r.Status),
	}
	if r.DueDate != nil {
		due := r.DueDate.Time
		task.DueDate = &due
	}
	return task
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *DateTime `json:"dueDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		resp.DueDate = &DateTime{Time: *task.DueDate}
	}
	return resp
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// Layouts accepted for dueDate, most specific first. Values without a zone
// are read as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateTime is a timestamp that also accepts local date-time and date-only
// strings when decoding.
type DateTime struct {
	time.Time
}

// ParseDateTime parses s using the accepted dueDate layouts.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dueDate must be a string: %w", err)
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}
