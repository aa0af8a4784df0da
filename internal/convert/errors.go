// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an attempt failed.
type ErrorKind string

const (
	KindEmptySelection   ErrorKind = "empty_selection"
	KindTransportFailure ErrorKind = "transport_failure"
	KindServiceFailure   ErrorKind = "service_failure"
)

// Sentinel errors matched with errors.Is against an *AttemptError.
var (
	ErrEmptySelection   = errors.New("empty selection")
	ErrTransportFailure = errors.New("transport failure")
	ErrServiceFailure   = errors.New("service failure")
)

const (
	msgEmptySelection = "Please select at least one image file."
	msgServiceFailure = "Failed to convert images."
)

// AttemptError describes a failed attempt. Message is safe to show to the
// user; Diagnostic holds the raw service response for logs only.
type AttemptError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Diagnostic string
	Err        error
}

func (e *AttemptError) Error() string {
	return e.Message
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *AttemptError) Is(target error) bool {
	switch target {
	case ErrEmptySelection:
		return e.Kind == KindEmptySelection
	case ErrTransportFailure:
		return e.Kind == KindTransportFailure
	case ErrServiceFailure:
		return e.Kind == KindServiceFailure
	}
	return false
}

// UserText returns the status line shown for the failure. An empty
// selection is shown bare; every other failure is prefixed with "Error: ".
func (e *AttemptError) UserText() string {
	if e.Kind == KindEmptySelection {
		return e.Message
	}
	return "Error: " + e.Message
}

func emptySelectionError() *AttemptError {
	return &AttemptError{Kind: KindEmptySelection, Message: msgEmptySelection}
}

func transportError(err error) *AttemptError {
	return &AttemptError{Kind: KindTransportFailure, Message: err.Error(), Err: err}
}

func serviceError(status int, body []byte) *AttemptError {
	return &AttemptError{
		Kind:       KindServiceFailure,
		Message:    msgServiceFailure,
		StatusCode: status,
		Diagnostic: string(body),
		Err:        fmt.Errorf("conversion service returned HTTP %d", status),
	}
}
