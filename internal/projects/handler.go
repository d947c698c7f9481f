package projects

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

// RegisterRoutes attaches project routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.POST("/projects/save", h.save)
	rg.DELETE("/projects/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch projects", nil)
		return
	}
	if items == nil {
		items = []Project{}
	}
	respond.JSON(c, http.StatusOK, items)
}

func (h *Handler) save(c *gin.Context) {
	var p Project
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Save(c.Request.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save project", nil)
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
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete project", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
