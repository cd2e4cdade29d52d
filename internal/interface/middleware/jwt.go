package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxUserIDKey = "userID"

// BearerToken returns the token from "Authorization: Bearer <token>", or ""
// when the header is absent or uses another scheme.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
