package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
	"github.com/oksasatya/ghardekho-api/pkg/response"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable is the single place application errors become HTTP responses.
var errorTable = []errorMapping{
	{application.ErrDuplicateEmail, http.StatusBadRequest, "DuplicateEmail"},
	{application.ErrInvalidCredentials, http.StatusBadRequest, "InvalidCredentials"},
	{application.ErrInvalidInput, http.StatusBadRequest, "InvalidInput"},
	{application.ErrInvalidFilter, http.StatusBadRequest, "InvalidFilter"},
	{application.ErrAlreadySaved, http.StatusBadRequest, "AlreadySaved"},
	{application.ErrMissingToken, http.StatusUnauthorized, "MissingToken"},
	{application.ErrInvalidToken, http.StatusUnauthorized, "InvalidToken"},
	{application.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{application.ErrUserNotFound, http.StatusNotFound, "UserNotFound"},
	{application.ErrPropertyNotFound, http.StatusNotFound, "NotFound"},
	{application.ErrSavedNotFound, http.StatusNotFound, "NotFound"},
}

// StatusFor returns the HTTP status and error code for err.
// Unclassified errors are 500 "Internal".
func StatusFor(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "Internal"
}

// writeError renders err with the envelope. Wrapped detail after the
// sentinel message is kept for 4xx; 5xx responses stay generic and are logged.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError {
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
			})
		}
		response.Error(c, status, "internal server error", code, nil)
		return
	}
	response.Error(c, status, err.Error(), code, nil)
}
