package types

import (
	"errors"
	"net/http"

	appErr "github.com/Nehru-cyber/task-manager/pkg/errors"
)

// HTTPStatus maps a service error to a status code and a user-safe message.
// Duplicate emails report 400 like other bad input, not 409.
func HTTPStatus(err error) (int, string) {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError, "internal server error"
	}
	switch ae.Code {
	case appErr.CodeInvalid, appErr.CodeConflict:
		return http.StatusBadRequest, ae.Message
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized, ae.Message
	case appErr.CodeNotFound:
		return http.StatusNotFound, ae.Message
	default:
		return http.StatusInternalServerError, ae.Message
	}
}
