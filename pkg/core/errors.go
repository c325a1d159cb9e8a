package core

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrInvalidRange      = errors.New("days: invalid range (end before start)")
	ErrInvalidMask       = errors.New("days: invalid weekday mask (must be 0-127)")
	ErrInvalidToken      = errors.New("days: invalid weekday token")
	ErrInvalidListSyntax = errors.New("days: invalid weekday list syntax")
	ErrEmptySchedule     = errors.New("days: schedule has no weekdays")
)

// ParseError records the input that failed to parse into a schedule.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err with the offending input.
func NewParseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}
