package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/payload"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/respond"
)

// The admin UI caps picks at 5MB; base64 inflates by a third, so leave headroom.
const maxUploadSize = 50 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.POST("/resumes", h.create)
	rg.PATCH("/resumes/:id/active", h.activate)
	rg.DELETE("/resumes/:id", h.remove)
	rg.GET("/resume/download", h.download)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}
	resp := make([]ResumeResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}
	respond.JSON(c, http.StatusOK, resp)
}

type createRequest struct {
	FileName string `json:"fileName" binding:"required"`
	FileData string `json:"fileData" binding:"required"`
	IsActive bool   `json:"isActive"`
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileName and fileData are required", nil)
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), req.FileName, req.FileData, req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", nil)
		}
		return
	}

	c.Set("resumeId", res.ID)
	metrics.IncResumeUploaded()
	metrics.ObserveResumePayloadBytes(float64(res.SizeBytes))
	respond.JSON(c, http.StatusCreated, toResponse(res))
}

func (h *Handler) activate(c *gin.Context) {
	id := c.Param("id")

	res, err := h.Svc.Activate(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume id not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to activate resume", nil)
		}
		return
	}

	c.Set("resumeId", res.ID)
	metrics.IncResumeActivated()
	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		}
		return
	}

	metrics.IncResumeDeleted()
	respond.JSON(c, http.StatusOK, gin.H{"message": "Deleted successfully"})
}

func (h *Handler) download(c *gin.Context) {
	res, fileName, data, err := h.Svc.Download(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume file data not found", nil)
		case errors.Is(err, payload.ErrCorruptPayload):
			respond.Error(c, http.StatusInternalServerError, "corrupt_payload", "stored resume could not be decoded", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to resolve resume", nil)
		}
		return
	}

	c.Set("resumeId", res.ID)
	metrics.IncResumeDownloaded()
	c.Header("Content-Disposition", `attachment; filename=`+fileName)
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, payload.MimePDF, data)
}
