package controllers

import (
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"net/http"
	"strings"
	"time"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type errorResponse struct {
	Detail any `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeError maps the error taxonomy onto HTTP statuses. Unknown errors are
// logged and reported as 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	var ve *models.ValidationError
	var ce *models.CollaboratorError
	switch {
	case errors.As(err, &ve):
		writeDetail(w, http.StatusUnprocessableEntity, ve.Fields)
	case errors.Is(err, models.ErrNotFound):
		writeDetail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		writeDetail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrConflict):
		writeDetail(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrCollaboratorDisabled):
		writeDetail(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &ce):
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		writeDetail(w, http.StatusBadGateway, ce.Collaborator+" unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		writeDetail(w, http.StatusGatewayTimeout, "request timed out")
	default:
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decodeJSON reads a bounded JSON body into dst. It answers 400 itself and
// reports false when the body cannot be decoded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func ownerID(r *http.Request) string {
	id, _ := providers.UserIDFromContext(r.Context())
	return id
}

// queryInt reads an integer query parameter bounded to [lower, upper].
func queryInt(r *http.Request, name string, def, lower, upper int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil || v < lower || v > upper {
		return 0, models.NewValidationError(name, fmt.Sprintf("%s must be an integer between %d and %d", name, lower, upper))
	}
	return v, nil
}

// queryTime reads an optional ISO-8601 query parameter. Absent values are zero.
func queryTime(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, ok := models.ParseTime(raw)
	if !ok {
		return time.Time{}, models.NewValidationError(name, name+" must be an ISO-8601 datetime")
	}
	return t, nil
}

func queryRange(r *http.Request) (time.Time, time.Time, error) {
	start, err := queryTime(r, "start_date")
	if err != nil {
		return start, start, err
	}
	end, err := queryTime(r, "end_date")
	return start, end, err
}

// queryList accepts both repeated parameters and comma separated values.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
