package server

import (
	"errors"

	authdomain "github.com/storefrontlabs/vitrina/internal/auth/domain"
)

// classifyErrorForLog labels handler errors for the request log without
// leaking payload detail.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if vErr := asValidationErrors(err); vErr != nil {
		code := ""
		if len(vErr.Errors) > 0 {
			code = vErr.Errors[0].Code
		}
		return "validation_error", code
	}
	switch {
	case isValidationError(err):
		return "validation_error", validationErrorCode(err)
	case isNotFoundError(err):
		return "not_found", ""
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTenantRequired),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired):
		return "unauthorized", ""
	case errors.Is(err, ErrTooManyRequests):
		return "too_many_requests", ""
	default:
		return "internal_error", ""
	}
}
