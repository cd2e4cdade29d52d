package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/internal/container"
	handlers "github.com/oksasatya/ghardekho-api/internal/interface/http"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	AuthMW  gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, authMW gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, AuthMW: authMW}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(m.AuthMW)
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
