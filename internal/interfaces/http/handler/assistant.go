package handler

import (
	projectapp "github.com/buildtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssistantHandler handles the project assistant endpoint
type AssistantHandler struct {
	BaseHandler
	assistantService *projectapp.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantService *projectapp.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
	}
}

// RegisterRoutes registers assistant routes on the given group
func (h *AssistantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/ask", h.Ask)
}

// Ask sends a question to the assistant and records the exchange as a
// project note
func (h *AssistantHandler) Ask(c *gin.Context) {
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

	var req projectapp.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.assistantService.Ask(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
