package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy: every failure a workflow can surface is one of these.
// Nothing here is fatal to the process; handlers map them to HTTP statuses
// and the form stays usable.

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

// UnavailableError marks a transport failure talking to an external
// collaborator (record store, assistant endpoint).
type UnavailableError struct {
	Service string
	Err     error
}

func (e UnavailableError) Error() string {
	name := e.Service
	if name == "" {
		name = "upstream"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s unavailable", name)
	}
	return fmt.Sprintf("%s unavailable: %v", name, e.Err)
}

func (e UnavailableError) Unwrap() error { return e.Err }

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

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
