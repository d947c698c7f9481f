package codingprofiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches coding-profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles", h.list)
	rg.POST("/profiles/sync", h.sync)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profiles", nil)
		return
	}
	if items == nil {
		items = []CodingProfile{}
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) sync(c *gin.Context) {
	var profiles []CodingProfile
	if err := c.ShouldBindJSON(&profiles); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Sync(c.Request.Context(), profiles)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "sync failed", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}
