package handler

import (
	projectapp "github.com/buildtrack/backend/internal/application/project"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler handles project note endpoints
type NoteHandler struct {
	BaseHandler
	noteService *projectapp.NoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *projectapp.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// RegisterRoutes registers note routes on the given group
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects/:id/notes", h.Add)
	rg.GET("/projects/:id/notes", h.List)
}

// Add adds a note to a project
func (h *NoteHandler) Add(c *gin.Context) {
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

	var req projectapp.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	note, err := h.noteService.Add(c.Request.Context(), userID, projectID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, note)
}

// List returns a project's notes, optionally filtered by stage
func (h *NoteHandler) List(c *gin.Context) {
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

	var stageID *uuid.UUID
	if raw := c.Query("stage_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid stage ID format")
			return
		}
		stageID = &parsed
	}

	notes, err := h.noteService.List(c.Request.Context(), userID, projectID, stageID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, notes)
}
