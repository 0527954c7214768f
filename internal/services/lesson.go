package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akanksha509/AI-Tutor-sub001/internal/cache"
	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/repos"
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

type LessonService interface {
	CreateLesson(ctx context.Context, topic, difficulty string, totalChunks int) (*types.Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error)
	ListLessons(ctx context.Context, limit, offset int) ([]*types.Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
}

type lessonService struct {
	db         *gorm.DB
	log        *logger.Logger
	lessonRepo repos.LessonRepo
	contexts   cache.ContextCache
}

func NewLessonService(db *gorm.DB, log *logger.Logger, lessonRepo repos.LessonRepo, contexts cache.ContextCache) LessonService {
	return &lessonService{
		db:         db,
		log:        log.With("service", "LessonService"),
		lessonRepo: lessonRepo,
		contexts:   contexts,
	}
}

func (s *lessonService) CreateLesson(ctx context.Context, topic, difficulty string, totalChunks int) (*types.Lesson, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if difficulty == "" {
		difficulty = "beginner"
	}
	lesson := &types.Lesson{
		Topic:            topic,
		Title:            topic,
		Difficulty:       difficulty,
		GenerationStatus: "pending",
		TotalChunks:      totalChunks,
	}
	created, err := s.lessonRepo.Create(ctx, nil, lesson)
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}
	s.log.Info("Lesson created", "lesson_id", created.ID, "topic", topic)
	return created, nil
}

func (s *lessonService) GetLesson(ctx context.Context, id uuid.UUID) (*types.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, nil, id)
}

func (s *lessonService) ListLessons(ctx context.Context, limit, offset int) ([]*types.Lesson, error) {
	return s.lessonRepo.List(ctx, nil, limit, offset)
}

func (s *lessonService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	if err := s.lessonRepo.Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}
	if s.contexts != nil {
		if err := s.contexts.Drop(ctx, id); err != nil {
			s.log.Warn("Failed to drop cached chunk context", "lesson_id", id, "error", err)
		}
	}
	return nil
}
