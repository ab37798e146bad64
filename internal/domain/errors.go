package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UpstreamError is returned when a backend endpoint fails or rejects a call.
// Msg carries the backend-provided message when the response had one.
type UpstreamError struct {
	Endpoint string
	Status   int
	Msg      string
	Err      error
}

func (e UpstreamError) Error() string {
	switch {
	case e.Msg != "" && e.Status > 0:
		return fmt.Sprintf("%s: %s (status %d)", e.Endpoint, e.Msg, e.Status)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Msg)
	case e.Status > 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Endpoint, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s: upstream error", e.Endpoint)
	}
}

func (e UpstreamError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

// AsUpstream extracts the UpstreamError from an error chain.
func AsUpstream(err error) (UpstreamError, bool) {
	var target UpstreamError
	ok := errors.As(err, &target)
	return target, ok
}
