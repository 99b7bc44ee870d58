package components

import (
	"errors"

	apperrors "aperture/internal/platform/errors"
)

// UserMessage turns a use-case error into text for the status line or a form.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, apperrors.ErrAccountExists):
		return "An account with this email already exists."
	case errors.Is(err, apperrors.ErrNoActiveExam):
		return "No exam in progress."
	}
	return err.Error()
}
