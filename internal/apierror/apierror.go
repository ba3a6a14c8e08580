package apierror

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrInvalidArgument    ErrorCode = "INVALID_ARGUMENT"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAccessDenied       ErrorCode = "ACCESS_DENIED"
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrAccountNotActive   ErrorCode = "ACCOUNT_NOT_ACTIVE"
	ErrInsufficientFunds  ErrorCode = "INSUFFICIENT_FUNDS"
	ErrValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func MapErrorToHTTPStatus(err error) int {
	if apiErr, ok := err.(APIError); ok {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrAccessDenied:
			return http.StatusForbidden
		case ErrInvalidCredentials, ErrInvalidToken, ErrAccountNotActive:
			return http.StatusUnauthorized
		case ErrInvalidArgument, ErrValidationFailed, ErrInsufficientFunds:
			return http.StatusBadRequest
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
