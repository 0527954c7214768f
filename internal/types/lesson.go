package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Lesson struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Topic            string         `gorm:"column:topic;not null" json:"topic"`
	Title            string         `gorm:"column:title" json:"title,omitempty"`
	Difficulty       string         `gorm:"column:difficulty;not null;default:'beginner'" json:"difficulty"`
	GenerationStatus string         `gorm:"column:generation_status;not null;default:'pending';index" json:"generation_status"`
	TotalChunks      int            `gorm:"column:total_chunks;not null;default:0" json:"total_chunks"`
	AcceptedChunks   int            `gorm:"column:accepted_chunks;not null;default:0" json:"accepted_chunks"`
	RejectedChunks   int            `gorm:"column:rejected_chunks;not null;default:0" json:"rejected_chunks"`
	TimelineDuration int64          `gorm:"column:timeline_duration;not null;default:0" json:"timeline_duration"`
	CurrentContext   datatypes.JSON `gorm:"type:jsonb;column:current_context" json:"current_context,omitempty"`
	GenerationError  string         `gorm:"column:generation_error" json:"generation_error,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Lesson) TableName() string { return "lesson" }
