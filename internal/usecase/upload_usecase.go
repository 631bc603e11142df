package usecase

import (
	"context"

	"neofidu/internal/domain/entity"
)

// UploadCoordinator pushes locally buffered files to external storage after
// payment confirmation. Files are sent independently; one failure never
// aborts the batch, and retries are the orchestrator's responsibility.
type UploadCoordinator interface {
	// Upload stores every file under the submission reference and reports
	// the split outcome: attached documents and the file records that
	// failed, so callers can retry exactly those.
	Upload(ctx context.Context, reference string, files []entity.UploadedFileRecord) (attached []entity.AttachedDocument, failed []entity.UploadedFileRecord)
}
