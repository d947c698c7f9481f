package profile

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

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.get)
	rg.POST("/user/update", h.update)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// An unset profile is an empty object, not an error.
			respond.JSON(c, http.StatusOK, gin.H{})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	var p Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Update(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}
