package handler

import (
	projectapp "github.com/buildtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgressHandler handles per-project stage progress endpoints
type ProgressHandler struct {
	BaseHandler
	stageViewService *projectapp.StageViewService
	progressService  *projectapp.ProgressService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(
	stageViewService *projectapp.StageViewService,
	progressService *projectapp.ProgressService,
) *ProgressHandler {
	return &ProgressHandler{
		stageViewService: stageViewService,
		progressService:  progressService,
	}
}

// RegisterRoutes registers progress routes on the given group
func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects/:id/stages/:stageID", h.GetStageView)
	rg.PUT("/projects/:id/stages/:stageID/status", h.SetStageStatus)
	rg.POST("/projects/:id/checks/:checkItemID", h.UpdateCheckResult)
}

// GetStageView returns the merged per-project view of one catalog stage
func (h *ProgressHandler) GetStageView(c *gin.Context) {
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
	stageID, err := uuid.Parse(c.Param("stageID"))
	if err != nil {
		h.BadRequest(c, "Invalid stage ID format")
		return
	}

	view, err := h.stageViewService.GetStageView(c.Request.Context(), userID, projectID, stageID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, view)
}

// SetStageStatus sets the status of one stage for a project
func (h *ProgressHandler) SetStageStatus(c *gin.Context) {
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
	stageID, err := uuid.Parse(c.Param("stageID"))
	if err != nil {
		h.BadRequest(c, "Invalid stage ID format")
		return
	}

	var req projectapp.SetStageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	status, err := h.progressService.SetStageStatus(c.Request.Context(), userID, projectID, stageID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}

// UpdateCheckResult records the outcome of one checklist item
func (h *ProgressHandler) UpdateCheckResult(c *gin.Context) {
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
	checkItemID, err := uuid.Parse(c.Param("checkItemID"))
	if err != nil {
		h.BadRequest(c, "Invalid check item ID format")
		return
	}

	var req projectapp.UpdateCheckResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.progressService.UpdateCheckResult(c.Request.Context(), userID, projectID, checkItemID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
