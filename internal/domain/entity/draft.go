package entity

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep is one screen of the intake wizard. Steps form a fixed order;
// the draft records how far the client has progressed.
type WizardStep string

const (
	StepSituation  WizardStep = "situation"
	StepFamily     WizardStep = "family"
	StepFinancials WizardStep = "financials"
	StepProperty   WizardStep = "property"
	StepDocuments  WizardStep = "documents"
	StepOptions    WizardStep = "options"
	StepPayment    WizardStep = "payment"
)

// StepOrder is the canonical wizard sequence. Options precede documents
// because a postal delivery choice waives electronic uploads entirely.
var StepOrder = []WizardStep{
	StepSituation,
	StepFamily,
	StepFinancials,
	StepProperty,
	StepOptions,
	StepDocuments,
	StepPayment,
}

// UploadedFileRecord describes one file the client attached during the
// wizard. Payload lives in memory only and is never serialized: the durable
// draft can describe what was attached but can never resurrect the bytes.
// A resumed session must re-prompt for anything not yet uploaded remotely.
type UploadedFileRecord struct {
	LocalID     uuid.UUID        `json:"local_id"`
	DisplayName string           `json:"display_name"`
	SizeBytes   int64            `json:"size_bytes"`
	Category    DocumentCategory `json:"category"`
	RemoteURL   string           `json:"remote_url,omitempty"`

	// Payload is the raw file content, memory-only by design.
	Payload []byte `json:"-"`

	// NeedsReattachment is set on load for records whose payload is gone
	// and which were never uploaded remotely. Not persisted.
	NeedsReattachment bool `json:"-"`
}

// DraftState is the resumable, not-yet-paid representation of one
// in-progress submission: the single durable record keyed per draft.
type DraftState struct {
	ID                     uuid.UUID            `json:"id"`
	CurrentStep            WizardStep           `json:"current_step"`
	Profile                Profile              `json:"profile"`
	ActiveDocumentCategory DocumentCategory     `json:"active_document_category,omitempty"`
	Reference              string               `json:"reference,omitempty"`
	UploadedFiles          []UploadedFileRecord `json:"uploaded_files"`
	SavedAt                time.Time            `json:"saved_at"`
}

// FlagMissingPayloads marks every uploaded file whose bytes are gone and
// which was never uploaded remotely. Called after restoring a draft from the
// durable store, where payloads by design do not survive.
func (d *DraftState) FlagMissingPayloads() {
	for i := range d.UploadedFiles {
		f := &d.UploadedFiles[i]
		f.NeedsReattachment = len(f.Payload) == 0 && f.RemoteURL == ""
	}
}

// UploadedCategories lists the categories the client attached a file for.
func (d *DraftState) UploadedCategories() []DocumentCategory {
	categories := make([]DocumentCategory, 0, len(d.UploadedFiles))
	for _, f := range d.UploadedFiles {
		categories = append(categories, f.Category)
	}

	return categories
}
