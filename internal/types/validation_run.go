package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ValidationRun is the audit record of one chunk passing through the
// validation engine and the acceptance pipeline.
type ValidationRun struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LessonID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Lesson             *Lesson        `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"lesson,omitempty"`
	ChunkID            string         `gorm:"column:chunk_id;not null;index" json:"chunk_id"`
	ChunkNumber        int            `gorm:"column:chunk_number;not null" json:"chunk_number"`
	Decision           string         `gorm:"column:decision;not null;index" json:"decision"` // accept|retry|reject
	Attempt            int            `gorm:"column:attempt;not null;default:1" json:"attempt"`
	ErrorCount         int            `gorm:"column:error_count;not null;default:0" json:"error_count"`
	WarningCount       int            `gorm:"column:warning_count;not null;default:0" json:"warning_count"`
	BackwardContinuity float64        `gorm:"column:backward_continuity;not null;default:1" json:"backward_continuity"`
	ForwardContinuity  float64        `gorm:"column:forward_continuity;not null;default:1" json:"forward_continuity"`
	UserExperience     float64        `gorm:"column:user_experience;not null;default:1" json:"user_experience"`
	TechnicalSuccess   float64        `gorm:"column:technical_success;not null;default:1" json:"technical_success"`
	Result             datatypes.JSON `gorm:"type:jsonb;column:result" json:"result,omitempty"`
	CreatedAt          time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ValidationRun) TableName() string { return "validation_run" }
