package service

import (
	"context"

	"neofidu/internal/domain/entity"
)

// DocumentStorageService is the out-of-scope object-storage boundary.
// Every stored object is tagged with the submission reference so a human
// operator can locate documents even if the in-app record is lost.
type DocumentStorageService interface {
	// PutFile stores one document and returns its remote URL.
	PutFile(ctx context.Context, reference string, category entity.DocumentCategory, filename string, data []byte) (string, error)
}
