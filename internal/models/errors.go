package models

import (
	"errors"
	"fmt"
	"github.com/gookit/validate"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrConflict             = errors.New("conflict")
	ErrCollaboratorDisabled = errors.New("collaborator disabled")
)

// ValidationError carries malformed-input details keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func fromValidateErrors(errs validate.Errors) *ValidationError {
	ve := &ValidationError{Fields: make(map[string]string, len(errs))}
	for field, ms := range errs {
		ve.Fields[field] = ms.One()
	}
	return ve
}

// merge folds extra field errors into ve, allocating when ve is nil.
func (e *ValidationError) merge(field, msg string) *ValidationError {
	if e == nil {
		e = &ValidationError{Fields: map[string]string{}}
	}
	e.Fields[field] = msg
	return e
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// CollaboratorError wraps a failure of an external dependency (store, LLM, broker).
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func NotFound(entity, id string) error {
	return fmt.Errorf("%s with ID %s %w", entity, id, ErrNotFound)
}

func validateStruct(in any) *ValidationError {
	v := validate.Struct(in)
	if v.Validate() {
		return nil
	}
	return fromValidateErrors(v.Errors)
}

func validateMap(data map[string]any, rules map[string]string) *ValidationError {
	if len(data) == 0 {
		return nil
	}
	v := validate.Map(data)
	for field, rule := range rules {
		if _, ok := data[field]; ok {
			v.StringRule(field, rule)
		}
	}
	if v.Validate() {
		return nil
	}
	return fromValidateErrors(v.Errors)
}
