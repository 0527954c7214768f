package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/akanksha509/AI-Tutor-sub001/internal/cache"
	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/repos"
	"github.com/akanksha509/AI-Tutor-sub001/internal/sse"
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
	"github.com/akanksha509/AI-Tutor-sub001/internal/validation"
)

// ChunkOutcome pairs the engine's judgment with the pipeline's decision and,
// on acceptance, the context the next chunk will be assessed against.
type ChunkOutcome struct {
	Result   validation.ChunkResult `json:"result"`
	Decision Decision               `json:"decision"`
	Attempt  int                    `json:"attempt"`
	Context  *types.ChunkContext    `json:"context,omitempty"`
}

type ChunkValidationService interface {
	// ValidateStandalone judges a chunk against an explicit previous
	// context without touching lesson state.
	ValidateStandalone(ctx context.Context, chunk types.StreamingTimelineChunk, previous *types.ChunkContext) validation.ChunkResult
	// ValidateLessonChunk judges a chunk against the lesson's current
	// context, applies the acceptance policy, records the run, and on
	// acceptance advances the lesson context.
	ValidateLessonChunk(ctx context.Context, lessonID uuid.UUID, chunk types.StreamingTimelineChunk) (*ChunkOutcome, error)
	GetRuns(ctx context.Context, lessonID uuid.UUID) ([]*types.ValidationRun, error)
}

type chunkValidationService struct {
	db         *gorm.DB
	log        *logger.Logger
	cfg        validation.Config
	policy     AcceptancePolicy
	lessonRepo repos.LessonRepo
	runRepo    repos.ValidationRunRepo
	contexts   cache.ContextCache
	hub        *sse.Hub
}

func NewChunkValidationService(
	db *gorm.DB,
	log *logger.Logger,
	cfg validation.Config,
	policy AcceptancePolicy,
	lessonRepo repos.LessonRepo,
	runRepo repos.ValidationRunRepo,
	contexts cache.ContextCache,
	hub *sse.Hub,
) ChunkValidationService {
	serviceLog := log.With("service", "ChunkValidationService")
	if cfg.Log == nil {
		cfg.Log = serviceLog
	}
	return &chunkValidationService{
		db:         db,
		log:        serviceLog,
		cfg:        cfg,
		policy:     policy,
		lessonRepo: lessonRepo,
		runRepo:    runRepo,
		contexts:   contexts,
		hub:        hub,
	}
}

func (s *chunkValidationService) ValidateStandalone(ctx context.Context, chunk types.StreamingTimelineChunk, previous *types.ChunkContext) validation.ChunkResult {
	if previous == nil {
		previous = chunk.PreviousContext
	}
	return validation.ValidateChunk(s.cfg, chunk, previous)
}

func (s *chunkValidationService) ValidateLessonChunk(ctx context.Context, lessonID uuid.UUID, chunk types.StreamingTimelineChunk) (*ChunkOutcome, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}

	previous, err := s.currentContext(ctx, lesson)
	if err != nil {
		return nil, err
	}
	// The first chunk has nothing to be continuous with.
	if chunk.ChunkNumber <= 1 {
		previous = nil
	}

	result := validation.ValidateChunk(s.cfg, chunk, previous)

	attempts, err := s.runRepo.CountAttempts(ctx, nil, lessonID, chunk.ChunkID)
	if err != nil {
		s.log.Warn("Failed to count prior attempts", "lesson_id", lessonID, "chunk_id", chunk.ChunkID, "error", err)
	}
	attempt := int(attempts) + 1

	decision := s.policy.Decide(result, attempt)
	outcome := &ChunkOutcome{Result: result, Decision: decision, Attempt: attempt}

	if err := s.recordRun(ctx, lesson, chunk, outcome); err != nil {
		return nil, err
	}

	switch decision.Action {
	case ActionAccept:
		next := validation.DeriveChunkContext(chunk, previous)
		outcome.Context = &next
		if err := s.advanceLesson(ctx, lesson, chunk, next); err != nil {
			return nil, err
		}
		s.broadcast(lessonID, sse.EventChunkValidated, outcome)
		s.broadcast(lessonID, sse.EventContextAdvanced, next)
	case ActionRetry:
		s.broadcast(lessonID, sse.EventChunkRetry, outcome)
	case ActionReject:
		lesson.RejectedChunks++
		if err := s.lessonRepo.Update(ctx, nil, lesson); err != nil {
			s.log.Warn("Failed to bump rejected chunk count", "lesson_id", lessonID, "error", err)
		}
		s.broadcast(lessonID, sse.EventChunkRejected, outcome)
	}

	s.log.Info("Chunk validated",
		"lesson_id", lessonID,
		"chunk_id", chunk.ChunkID,
		"chunk_number", chunk.ChunkNumber,
		"action", decision.Action,
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
		"backward_continuity", result.Continuity.BackwardContinuity)
	return outcome, nil
}

func (s *chunkValidationService) GetRuns(ctx context.Context, lessonID uuid.UUID) ([]*types.ValidationRun, error) {
	return s.runRepo.GetByLessonID(ctx, nil, lessonID)
}

// currentContext prefers the cached context and falls back to the lesson row.
func (s *chunkValidationService) currentContext(ctx context.Context, lesson *types.Lesson) (*types.ChunkContext, error) {
	if s.contexts != nil {
		cached, err := s.contexts.Get(ctx, lesson.ID)
		if err != nil {
			s.log.Warn("Context cache read failed, falling back to database", "lesson_id", lesson.ID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}
	if len(lesson.CurrentContext) == 0 {
		return nil, nil
	}
	var chunkContext types.ChunkContext
	if err := json.Unmarshal(lesson.CurrentContext, &chunkContext); err != nil {
		return nil, fmt.Errorf("decode lesson context: %w", err)
	}
	return &chunkContext, nil
}

func (s *chunkValidationService) recordRun(ctx context.Context, lesson *types.Lesson, chunk types.StreamingTimelineChunk, outcome *ChunkOutcome) error {
	payload, err := json.Marshal(outcome.Result)
	if err != nil {
		return fmt.Errorf("encode validation result: %w", err)
	}
	run := &types.ValidationRun{
		LessonID:           lesson.ID,
		ChunkID:            chunk.ChunkID,
		ChunkNumber:        chunk.ChunkNumber,
		Decision:           string(outcome.Decision.Action),
		Attempt:            outcome.Attempt,
		ErrorCount:         len(outcome.Result.Errors),
		WarningCount:       len(outcome.Result.Warnings),
		BackwardContinuity: outcome.Result.Continuity.BackwardContinuity,
		ForwardContinuity:  outcome.Result.Continuity.ForwardContinuity,
		UserExperience:     outcome.Result.Quality.UserExperience,
		TechnicalSuccess:   outcome.Result.Quality.TechnicalSuccess,
		Result:             datatypes.JSON(payload),
	}
	if _, err := s.runRepo.Create(ctx, nil, run); err != nil {
		return fmt.Errorf("record validation run: %w", err)
	}
	return nil
}

func (s *chunkValidationService) advanceLesson(ctx context.Context, lesson *types.Lesson, chunk types.StreamingTimelineChunk, next types.ChunkContext) error {
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode chunk context: %w", err)
	}
	lesson.CurrentContext = datatypes.JSON(payload)
	lesson.AcceptedChunks++
	lesson.TimelineDuration = chunk.StartTimeOffset + chunk.Duration
	if chunk.TotalChunks > lesson.TotalChunks {
		lesson.TotalChunks = chunk.TotalChunks
	}
	switch {
	case lesson.AcceptedChunks >= lesson.TotalChunks && lesson.TotalChunks > 0:
		lesson.GenerationStatus = "completed"
	default:
		lesson.GenerationStatus = "generating"
	}
	if err := s.lessonRepo.Update(ctx, nil, lesson); err != nil {
		return fmt.Errorf("advance lesson: %w", err)
	}
	if s.contexts != nil {
		if err := s.contexts.Put(ctx, lesson.ID, next); err != nil {
			s.log.Warn("Failed to cache chunk context", "lesson_id", lesson.ID, "error", err)
		}
	}
	return nil
}

func (s *chunkValidationService) broadcast(lessonID uuid.UUID, event sse.Event, data any) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(sse.Message{
		Channel: sse.LessonChannel(lessonID),
		Event:   event,
		Data:    data,
	})
}
