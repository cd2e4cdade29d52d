package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/pkg/response"
)

// Auth validates the bearer token and stores the user id under CtxUserIDKey.
// With verifyUser set, the id must also resolve to a stored user.
func Auth(svc *application.AuthService, verifyUser bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := svc.Authenticate(BearerToken(c))
		if err != nil {
			if errors.Is(err, application.ErrMissingToken) {
				response.Abort(c, http.StatusUnauthorized, err.Error(), "MissingToken", nil)
				return
			}
			response.Abort(c, http.StatusUnauthorized, application.ErrInvalidToken.Error(), "InvalidToken", nil)
			return
		}

		if verifyUser {
			if _, err := svc.CurrentUser(c.Request.Context(), userID); err != nil {
				if errors.Is(err, application.ErrUserNotFound) {
					response.Abort(c, http.StatusUnauthorized, err.Error(), "UserNotFound", nil)
					return
				}
				_ = c.Error(err)
				response.Abort(c, http.StatusInternalServerError, "internal server error", "Internal", nil)
				return
			}
		}

		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}
