package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validation("title is required"), want: http.StatusBadRequest},
		{name: "not found", err: NotFound("Job not found"), want: http.StatusNotFound},
		{name: "duplicate", err: DuplicateApplication("already applied"), want: http.StatusBadRequest},
		{name: "conflict", err: Conflict("answer exists"), want: http.StatusBadRequest},
		{name: "transition", err: InvalidTransition("Hired is terminal"), want: http.StatusBadRequest},
		{name: "credentials", err: InvalidCredentials(), want: http.StatusBadRequest},
		{name: "ownership", err: Unauthorized("not your job"), want: http.StatusForbidden},
		{name: "wrapped", err: fmt.Errorf("submit: %w", NotFound("Employee not found")), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("update status: %w", InvalidTransition("cannot move from %s to %s", "Hired", "Pending"))
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.True(t, Is(err, KindInvalidTransition))
	assert.Equal(t, "cannot move from Hired to Pending", Message(err))
}

func TestMessage_unknownError(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(errors.New("pq: connection refused")))
}

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := Wrap(KindConflict, cause, "Answer already exists")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "duplicate key value")
}
