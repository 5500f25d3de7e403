package cserr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrUnavailable is returned when a dependency the request needs is not reachable.
	ErrUnavailable = New(fiber.StatusServiceUnavailable, CodeUnavailable, "service temporarily unavailable")
)

type Extras map[string]any

type CourtsideError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *CourtsideError {
	return &CourtsideError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e CourtsideError) Msg(format string, parts ...any) *CourtsideError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e CourtsideError) WithExtras(extras Extras) *CourtsideError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *CourtsideError {
	return ErrInvalidReq.WithExtras(Extras{
		"violations": violations,
	})
}

func (e *CourtsideError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
