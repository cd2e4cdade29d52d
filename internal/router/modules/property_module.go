package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/internal/container"
	handlers "github.com/oksasatya/ghardekho-api/internal/interface/http"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
)

// PropertyModule serves browsing (public) and posting (authenticated).
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	AuthMW  gin.HandlerFunc
}

func NewPropertyModule(h *handlers.PropertyHandler, authMW gin.HandlerFunc) *PropertyModule {
	return &PropertyModule{Handler: h, AuthMW: authMW}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	props := rg.Group("/properties")
	props.GET("", browseLimiter, m.Handler.List)
	props.GET("/search", searchLimiter, m.Handler.Search)
	props.GET("/:id", browseLimiter, m.Handler.Get)

	props.POST("", m.AuthMW,
		middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil),
		m.Handler.Create)
}
