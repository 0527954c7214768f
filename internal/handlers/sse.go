package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/sse"
)

type SSEHandler struct {
	log *logger.Logger
	hub *sse.Hub
}

func NewSSEHandler(log *logger.Logger, hub *sse.Hub) *SSEHandler {
	return &SSEHandler{log: log.With("handler", "SSEHandler"), hub: hub}
}

// Stream holds the connection open and forwards lesson events to the client.
func (h *SSEHandler) Stream(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Query("lesson_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_lesson_id", errors.New("lesson_id query parameter must be a UUID"))
		return
	}

	client := h.hub.NewClient()
	h.hub.Subscribe(client, sse.LessonChannel(lessonID))
	defer h.hub.RemoveClient(client)

	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
