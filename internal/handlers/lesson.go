package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/services"
)

type LessonHandler struct {
	log     *logger.Logger
	lessons services.LessonService
}

func NewLessonHandler(log *logger.Logger, lessons services.LessonService) *LessonHandler {
	return &LessonHandler{log: log.With("handler", "LessonHandler"), lessons: lessons}
}

type createLessonRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Difficulty  string `json:"difficulty,omitempty"`
	TotalChunks int    `json:"total_chunks,omitempty"`
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	lesson, err := h.lessons.CreateLesson(c.Request.Context(), req.Topic, req.Difficulty, req.TotalChunks)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_lesson_id", err)
		return
	}
	lesson, err := h.lessons.GetLesson(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "lesson_not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "lesson_fetch_failed", err)
		return
	}
	RespondOK(c, lesson)
}

func (h *LessonHandler) ListLessons(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	lessons, err := h.lessons.ListLessons(c.Request.Context(), limit, offset)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "lesson_list_failed", err)
		return
	}
	RespondOK(c, lessons)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_lesson_id", err)
		return
	}
	if err := h.lessons.DeleteLesson(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusInternalServerError, "lesson_delete_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
