package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/interface/middleware"
	"github.com/oksasatya/ghardekho-api/pkg/response"
	"github.com/oksasatya/ghardekho-api/pkg/validation"
)

var filterKeys = []string{"location", "type", "minPrice", "maxPrice", "bedrooms"}

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

type locationRequest struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Address string `json:"address"`
}

// createPropertyRequest binds loosely; field rules live in the service so
// that every validation failure reports InvalidInput the same way.
type createPropertyRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       FlexNumber      `json:"price"`
	Type        string          `json:"type"`
	Bedrooms    FlexNumber      `json:"bedrooms"`
	Bathrooms   FlexNumber      `json:"bathrooms"`
	Area        FlexNumber      `json:"area"`
	Location    locationRequest `json:"location"`
	Features    FlexStrings     `json:"features"`
	Images      FlexStrings     `json:"images"`
}

func (r createPropertyRequest) toInput() application.CreatePropertyInput {
	return application.CreatePropertyInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       string(r.Price),
		Type:        r.Type,
		Bedrooms:    string(r.Bedrooms),
		Bathrooms:   string(r.Bathrooms),
		Area:        string(r.Area),
		Location: entity.Location{
			City:    r.Location.City,
			State:   r.Location.State,
			Address: r.Location.Address,
		},
		Features: r.Features,
		Images:   r.Images,
	}
}

func (h *PropertyHandler) List(c *gin.Context) {
	raw := make(map[string]string, len(filterKeys))
	for _, k := range filterKeys {
		raw[k] = c.Query(k)
	}
	f, err := application.ParsePropertyFilter(raw)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	props, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, props, "ok", map[string]any{"count": len(props)})
}

func (h *PropertyHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	props, err := h.Svc.SearchText(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, props, "ok", map[string]any{"count": len(props)})
}

func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "ok", nil)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, application.ErrInvalidInput.Error(), "InvalidInput", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created", nil)
}
