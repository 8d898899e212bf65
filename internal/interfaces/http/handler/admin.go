package handler

import (
	catalogapp "github.com/buildtrack/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// AdminCatalogHandler handles the admin stage catalog endpoints
type AdminCatalogHandler struct {
	BaseHandler
	stageService *catalogapp.StageService
}

// NewAdminCatalogHandler creates a new AdminCatalogHandler
func NewAdminCatalogHandler(stageService *catalogapp.StageService) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		stageService: stageService,
	}
}

// RegisterRoutes registers admin catalog routes on the given group
func (h *AdminCatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stages", h.List)
	rg.POST("/stages", h.Upsert)
}

// List returns all stages with their check items grouped under them
func (h *AdminCatalogHandler) List(c *gin.Context) {
	stages, err := h.stageService.ListWithChecks(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stages)
}

// Upsert creates or replaces a stage and its nested check items
func (h *AdminCatalogHandler) Upsert(c *gin.Context) {
	var req catalogapp.UpsertStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	stage, err := h.stageService.Upsert(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stage)
}
