package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/collisions-monitor/internal/domain"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy of e carrying details; the shared error values stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// FromDomain maps domain sentinel errors onto API errors. Unknown errors become
// ErrInternalServer.
func FromDomain(err error) *AppError {
	var appErr *AppError
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, domain.ErrInvalidSelector):
		return ErrInvalidCounty.WithDetails(map[string]interface{}{"reason": err.Error()})
	case stderrors.Is(err, domain.ErrInvalidDateRange):
		return ErrInvalidDateRange.WithDetails(map[string]interface{}{"reason": err.Error()})
	case stderrors.Is(err, domain.ErrSourceUnavailable):
		return ErrSourceUnavailable
	default:
		return ErrInternalServer
	}
}
