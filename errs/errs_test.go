package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestApiErr_ErrorAndUnwrap(t *testing.T) {
	err := NewNotFound("project")

	if err.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.StatusCode)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is to see the sentinel through Unwrap")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound must report true")
	}
}

func TestApiErr_GetFullError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("find", "projects", cause)

	full := err.GetFullError()
	if full == "" || full == err.Error() {
		t.Errorf("expected cause chain in %q", full)
	}
}

func TestNewDatabaseError_Classification(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection failure", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"generic query failure", errors.New("syntax error at or near"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tc.cause)
			if err.StatusCode != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, err.StatusCode)
			}
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewMissingRequiredFieldError("All fields are required", "title")

	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if err.Field != "title" {
		t.Errorf("expected field title, got %q", err.Field)
	}
	if err.Error() != "All fields are required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
