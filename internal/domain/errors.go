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
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// TamperError marks an amount-mismatch rejection. It is a validation failure
// on the wire but logged as a security event, so handlers can tell it apart.
type TamperError struct {
	ClientAmount int64
	ServerAmount int64
}

func (e TamperError) Error() string { return "Amount mismatch" }

type UpstreamError struct {
	Service string
	Err     error
}

func (e UpstreamError) Error() string {
	service := e.Service
	if service == "" {
		service = "upstream"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", service, e.Err)
	}
	return fmt.Sprintf("%s error", service)
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

func IsTamper(err error) bool {
	var target TamperError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}
