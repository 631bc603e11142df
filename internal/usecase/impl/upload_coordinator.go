package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/service"
	"neofidu/internal/usecase"

	"go.uber.org/fx"
)

// perFileTimeout caps a single document transfer so one slow file cannot
// stall the whole finalization batch.
const perFileTimeout = 30 * time.Second

type uploadCoordinator struct {
	storage service.DocumentStorageService
	logger  *slog.Logger
}

// UploadCoordinatorParams holds dependencies for the upload coordinator,
// injected by Fx.
type UploadCoordinatorParams struct {
	fx.In

	Storage service.DocumentStorageService
	Logger  *slog.Logger
}

// NewUploadCoordinator creates the post-payment document transfer fan-out.
func NewUploadCoordinator(params UploadCoordinatorParams) usecase.UploadCoordinator {
	return &uploadCoordinator{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Upload sends every buffered file independently and in parallel. Files
// already uploaded count as attached without a second transfer; files whose
// bytes are gone are reported failed without an attempt.
func (c *uploadCoordinator) Upload(ctx context.Context, reference string, files []entity.UploadedFileRecord) ([]entity.AttachedDocument, []entity.UploadedFileRecord) {
	attached := make([]entity.AttachedDocument, 0, len(files))
	var failed []entity.UploadedFileRecord

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range files {
		file := files[i]

		if file.RemoteURL != "" {
			attached = append(attached, entity.AttachedDocument{
				Category:    file.Category,
				DisplayName: file.DisplayName,
				RemoteURL:   file.RemoteURL,
			})

			continue
		}

		if len(file.Payload) == 0 {
			// Payload lost across a resume and never re-attached.
			failed = append(failed, file)

			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			fileCtx, cancel := context.WithTimeout(ctx, perFileTimeout)
			defer cancel()

			url, err := c.storage.PutFile(fileCtx, reference, file.Category, file.DisplayName, file.Payload)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Warn("document upload failed",
					slog.String("reference", reference),
					slog.String("file", file.DisplayName),
					slog.Any("error", err),
				)
				failed = append(failed, file)

				return
			}

			attached = append(attached, entity.AttachedDocument{
				Category:    file.Category,
				DisplayName: file.DisplayName,
				RemoteURL:   url,
			})
		}()
	}

	wg.Wait()

	return attached, failed
}
