package handler

import (
	catalogapp "github.com/buildtrack/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the read-only stage catalog endpoint
type CatalogHandler struct {
	BaseHandler
	stageService *catalogapp.StageService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(stageService *catalogapp.StageService) *CatalogHandler {
	return &CatalogHandler{
		stageService: stageService,
	}
}

// RegisterRoutes registers catalog routes on the given group
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stages", h.List)
}

// List returns the global stage catalog ordered by order_index
func (h *CatalogHandler) List(c *gin.Context) {
	stages, err := h.stageService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stages)
}
