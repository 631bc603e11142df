package model

import (
	"time"

	"github.com/google/uuid"
)

// DraftModel is the GORM-specific struct for the 'drafts' table. The whole
// wizard state is stored as one JSONB document keyed by the draft id; file
// payloads never reach it because the entity excludes them from
// serialization.
type DraftModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	CurrentStep string    `gorm:"type:varchar(32);not null"`
	Reference   string    `gorm:"type:varchar(32);index"`
	State       []byte    `gorm:"type:jsonb;not null"`
	SavedAt     time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DraftModel) TableName() string {
	return "drafts"
}
