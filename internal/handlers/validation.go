package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/services"
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

type ValidationHandler struct {
	log       *logger.Logger
	validator services.ChunkValidationService
}

func NewValidationHandler(log *logger.Logger, validator services.ChunkValidationService) *ValidationHandler {
	return &ValidationHandler{log: log.With("handler", "ValidationHandler"), validator: validator}
}

type standaloneValidateRequest struct {
	Chunk           types.StreamingTimelineChunk `json:"chunk"`
	PreviousContext *types.ChunkContext          `json:"previous_context,omitempty"`
}

// ValidateChunk judges a chunk without lesson state; useful for generator
// development and preflight checks.
func (h *ValidationHandler) ValidateChunk(c *gin.Context) {
	var req standaloneValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result := h.validator.ValidateStandalone(c.Request.Context(), req.Chunk, req.PreviousContext)
	RespondOK(c, result)
}

// ValidateLessonChunk judges a streamed chunk against the lesson's current
// context and applies the acceptance policy.
func (h *ValidationHandler) ValidateLessonChunk(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_lesson_id", err)
		return
	}
	var chunk types.StreamingTimelineChunk
	if err := c.ShouldBindJSON(&chunk); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_chunk", err)
		return
	}
	outcome, err := h.validator.ValidateLessonChunk(c.Request.Context(), lessonID, chunk)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "lesson_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "validation_failed", err)
		return
	}
	RespondOK(c, outcome)
}

func (h *ValidationHandler) GetRuns(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_lesson_id", err)
		return
	}
	runs, err := h.validator.GetRuns(c.Request.Context(), lessonID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "runs_fetch_failed", err)
		return
	}
	RespondOK(c, runs)
}
