package education

import (
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

// RegisterRoutes attaches education routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/education", h.get)
	rg.POST("/update/education", h.update)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch education", nil)
		return
	}
	respond.JSON(c, http.StatusOK, e)
}

func (h *Handler) update(c *gin.Context) {
	var e Education
	if err := c.ShouldBindJSON(&e); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Update(c.Request.Context(), e)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update education", nil)
		return
	}
	respond.JSON(c, http.StatusOK, saved)
}
