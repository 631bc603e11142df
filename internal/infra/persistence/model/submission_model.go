// Package model contains the GORM-specific persistence structs. They are
// deliberately separate from the domain entities so schema concerns never
// leak into the core.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionModel is the GORM-specific struct for the 'submissions' table.
// The profile snapshot and the upload outcome are stored as JSONB documents;
// the canton is lifted into its own column so operators can filter on it.
type SubmissionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Reference       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	DraftID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Canton          string    `gorm:"type:varchar(2);index"`
	ProfileSnapshot []byte    `gorm:"type:jsonb;not null"`
	TotalCentimes   int64     `gorm:"not null"`
	TaxCentimes     int64     `gorm:"not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
	TransactionID   string    `gorm:"type:varchar(255)"`

	AttachedDocuments []byte `gorm:"type:jsonb"`
	FailedUploads     []byte `gorm:"type:jsonb"`
	ManualFollowUp    bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// StatusHistoryModel is the GORM-specific struct for the append-only
// 'submission_status_history' table. Rows are only ever inserted.
type StatusHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Reference string    `gorm:"type:varchar(32);not null;index"`
	OldStatus string    `gorm:"type:varchar(32)"`
	NewStatus string    `gorm:"type:varchar(32);not null"`
	ChangedAt time.Time `gorm:"not null"`
	Actor     string    `gorm:"type:varchar(255);not null"`
	Notified  bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (StatusHistoryModel) TableName() string {
	return "submission_status_history"
}
