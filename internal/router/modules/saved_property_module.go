package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/internal/container"
	handlers "github.com/oksasatya/ghardekho-api/internal/interface/http"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
)

// SavedPropertyModule exposes a user's bookmarks under /users/saved-properties.
type SavedPropertyModule struct {
	Handler *handlers.SavedPropertyHandler
	AuthMW  gin.HandlerFunc
}

func NewSavedPropertyModule(h *handlers.SavedPropertyHandler, authMW gin.HandlerFunc) *SavedPropertyModule {
	return &SavedPropertyModule{Handler: h, AuthMW: authMW}
}

func (m *SavedPropertyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(m.AuthMW)
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/saved-properties", m.Handler.Save)
		auth.GET("/saved-properties", m.Handler.List)
		auth.DELETE("/saved-properties/:id", m.Handler.Remove)
	}
}
