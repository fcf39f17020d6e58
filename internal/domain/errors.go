package domain

import (
	"errors"
	"fmt"
)

// ErrSubmitInFlight is returned when a widget is asked to submit while a
// previous save is still running.
var ErrSubmitInFlight = errors.New("a save is already in progress")

// ValidationError rejects input before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NotFoundError means the employee has no onboarding application.
type NotFoundError struct {
	EmployeeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no application found for employee %q", e.EmployeeID)
}

// NetworkError wraps transport failures talking to the backend.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx response from the backend. Debug, Message and
// Detail carry the optional "debug", "message" and "error" body fields.
type ServerError struct {
	StatusCode int
	Debug      string
	Message    string
	Detail     string
}

func (e *ServerError) Error() string {
	if m := e.UserMessage(); m != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, m)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// UserMessage picks the most specific explanation the backend offered.
func (e *ServerError) UserMessage() string {
	switch {
	case e.Debug != "":
		return e.Debug
	case e.Message != "":
		return e.Message
	default:
		return e.Detail
	}
}
