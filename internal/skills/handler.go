package skills

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

// RegisterRoutes attaches skill-group routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skill-groups", h.list)
	rg.POST("/skill-groups", h.create)
	rg.PUT("/skill-groups/:id", h.update)
	rg.DELETE("/skill-groups/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch skill groups", nil)
		return
	}
	if items == nil {
		items = []SkillGroup{}
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var g SkillGroup
	if err := c.ShouldBindJSON(&g); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Create(c.Request.Context(), g)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create skill group", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, saved)
}

func (h *Handler) update(c *gin.Context) {
	var g SkillGroup
	if err := c.ShouldBindJSON(&g); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Update(c.Request.Context(), c.Param("id"), g)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "group not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update skill group", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete skill group", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Skill group deleted"})
}
