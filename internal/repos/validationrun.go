package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akanksha509/AI-Tutor-sub001/internal/logger"
	"github.com/akanksha509/AI-Tutor-sub001/internal/types"
)

type ValidationRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.ValidationRun) (*types.ValidationRun, error)
	GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) ([]*types.ValidationRun, error)
	CountAttempts(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, chunkID string) (int64, error)
}

type validationRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewValidationRunRepo(db *gorm.DB, baseLog *logger.Logger) ValidationRunRepo {
	return &validationRunRepo{db: db, log: baseLog.With("repo", "ValidationRunRepo")}
}

func (r *validationRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.ValidationRun) (*types.ValidationRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *validationRunRepo) GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) ([]*types.ValidationRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var runs []*types.ValidationRun
	if err := transaction.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("chunk_number ASC, created_at ASC").
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *validationRunRepo) CountAttempts(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID, chunkID string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ValidationRun{}).
		Where("lesson_id = ? AND chunk_id = ?", lessonID, chunkID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
