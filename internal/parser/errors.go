package parser

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText           = errors.New("parser: empty text")
	ErrMissingHandID       = errors.New("parser: hand id not found")
	ErrMissingDatetime     = errors.New("parser: hand datetime not found")
	ErrMissingTournamentID = errors.New("parser: summary tournament id not found")
)

// FieldError reports a mandatory field that could not be extracted.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
