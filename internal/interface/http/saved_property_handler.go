package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
	"github.com/oksasatya/ghardekho-api/pkg/response"
	"github.com/oksasatya/ghardekho-api/pkg/validation"
)

type SavedPropertyHandler struct {
	Svc    *application.SavedPropertyService
	Logger *logrus.Logger
}

func NewSavedPropertyHandler(svc *application.SavedPropertyService, logger *logrus.Logger) *SavedPropertyHandler {
	return &SavedPropertyHandler{Svc: svc, Logger: logger}
}

type savePropertyRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
}

func (h *SavedPropertyHandler) Save(c *gin.Context) {
	var req savePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", "InvalidInput", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Save(c.Request.Context(), middleware.UserID(c), req.PropertyID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "Property saved successfully", nil)
}

func (h *SavedPropertyHandler) List(c *gin.Context) {
	props, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, props, "ok", map[string]any{"count": len(props)})
}

func (h *SavedPropertyHandler) Remove(c *gin.Context) {
	if err := h.Svc.Remove(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Property removed from saved list", nil)
}
