package handler

import (
	projectapp "github.com/buildtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaHandler handles project media endpoints
type MediaHandler struct {
	BaseHandler
	mediaService *projectapp.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *projectapp.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
	}
}

// RegisterRoutes registers media routes on the given group
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/media/upload", h.CreateUpload)
}

// CreateUpload issues a presigned upload URL and records the media row.
// The row is written before the client uploads, so metadata may exist
// for uploads that never complete.
func (h *MediaHandler) CreateUpload(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID format")
		return
	}

	var req projectapp.CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.mediaService.CreateUpload(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}
