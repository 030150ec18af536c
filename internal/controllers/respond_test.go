package controllers

import (
	"context"
	"errors"
	"fmt"
	"mindcare/internal/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", models.NewValidationError("mood_rating", "too high"), http.StatusUnprocessableEntity},
		{"not found", models.NotFound("mood entry", "x"), http.StatusNotFound},
		{"unauthorized", fmt.Errorf("bad: %w", models.ErrUnauthorized), http.StatusUnauthorized},
		{"conflict", fmt.Errorf("dup: %w", models.ErrConflict), http.StatusConflict},
		{"disabled", fmt.Errorf("llm: %w", models.ErrCollaboratorDisabled), http.StatusServiceUnavailable},
		{"collaborator", &models.CollaboratorError{Collaborator: "llm", Err: errors.New("boom")}, http.StatusBadGateway},
		{"deadline", fmt.Errorf("list: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newLogger()
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/api/x", nil), logger, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.NotNil(t, detail(t, rr))
		})
	}
}

func TestWriteError_ValidationDetailHasFields(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodPost, "/", nil), newLogger(), models.NewValidationError("days", "out of range"))

	fields, ok := detail(t, rr).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "out of range", fields["days"])
}

func TestWriteError_InternalDetailsHidden(t *testing.T) {
	logger := newLogger()
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), logger, errors.New("secret path /var/db"))

	assert.NotContains(t, rr.Body.String(), "secret")
	assert.Equal(t, 1, logger.Count("error"))
}

func TestDecodeJSON_Rejections(t *testing.T) {
	for name, body := range map[string]string{
		"garbage":   "not json",
		"empty":     "",
		"oversized": `{"message":"` + strings.Repeat("x", maxRequestBodySize) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			var dst models.ChatInput
			assert.False(t, decodeJSON(rr, req, &dst))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestQueryInt(t *testing.T) {
	req := func(q string) *http.Request { return httptest.NewRequest(http.MethodGet, "/?"+q, nil) }

	v, err := queryInt(req(""), "days", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	v, err = queryInt(req("days=7"), "days", 30, 1, 365)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	for _, q := range []string{"days=0", "days=366", "days=abc", "days=1.5"} {
		_, err = queryInt(req(q), "days", 30, 1, 365)
		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve, q)
	}
}

func TestQueryList(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?tags=work,%20sleep&tags=calm&tags=", nil)
	assert.Equal(t, []string{"work", "sleep", "calm"}, queryList(req, "tags"))
	assert.Empty(t, queryList(req, "missing"))
}

func TestQueryRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?start_date=2026-04-01&end_date=2026-04-10T00:00:00Z", nil)
	start, end, err := queryRange(req)
	require.NoError(t, err)
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 10, end.Day())

	_, _, err = queryRange(httptest.NewRequest(http.MethodGet, "/?end_date=yesterday", nil))
	var ve *models.ValidationError
	assert.ErrorAs(t, err, &ve)
}
