package league_api_client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus matches every *StatusError via errors.Is
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedResponse is returned when a body is not JSON or lacks a required field
	ErrMalformedResponse = errors.New("malformed response")
	// ErrLeagueNotFound is returned when a league id is absent from the list response
	ErrLeagueNotFound = errors.New("league not found in response")
)

// StatusError describes a call that returned a status other than the expected one
type StatusError struct {
	Method     string
	Endpoint   string
	Expected   int
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: expected status %d, got %d: %s", e.Method, e.Endpoint, e.Expected, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
