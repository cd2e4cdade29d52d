package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/ghardekho-api/pkg/response"
)

type HealthHandler struct {
	AppName string
	Store   string
}

func NewHealthHandler(appName, store string) *HealthHandler {
	return &HealthHandler{AppName: appName, Store: store}
}

func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, map[string]string{"app": h.AppName, "store": h.Store}, "GharDekho API is running", nil)
}
