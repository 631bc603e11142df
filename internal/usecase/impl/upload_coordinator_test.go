package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"neofidu/internal/domain/entity"
	mockSvc "neofidu/internal/mocks/service"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// uploadCoordinatorFixtures holds all test dependencies for upload tests.
type uploadCoordinatorFixtures struct {
	coordinator usecase.UploadCoordinator
	storage     *mockSvc.MockDocumentStorageService
}

func createTestUploadCoordinator(t *testing.T) uploadCoordinatorFixtures {
	storage := mockSvc.NewMockDocumentStorageService(t)
	coordinator := NewUploadCoordinator(UploadCoordinatorParams{
		Storage: storage,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return uploadCoordinatorFixtures{
		coordinator: coordinator,
		storage:     storage,
	}
}

func TestUploadCoordinator_Upload_IndependentOutcomes(t *testing.T) {
	fx := createTestUploadCoordinator(t)

	ctx := context.Background()
	reference := "NF-2026-AAAA1111"
	files := []entity.UploadedFileRecord{
		{LocalID: uuid.New(), DisplayName: "bank.pdf", Category: entity.DocBank, Payload: []byte("a")},
		{LocalID: uuid.New(), DisplayName: "salary.pdf", Category: entity.DocSalary, Payload: []byte("b")},
	}

	fx.storage.EXPECT().
		PutFile(mock.Anything, reference, entity.DocBank, "bank.pdf", []byte("a")).
		Return("blob://docs/bank.pdf", nil)

	fx.storage.EXPECT().
		PutFile(mock.Anything, reference, entity.DocSalary, "salary.pdf", []byte("b")).
		Return("", errors.New("bucket unreachable"))

	attached, failed := fx.coordinator.Upload(ctx, reference, files)

	// One failure never drags down the other file.
	assert.Len(t, attached, 1)
	assert.Equal(t, "bank.pdf", attached[0].DisplayName)
	assert.Equal(t, "blob://docs/bank.pdf", attached[0].RemoteURL)
	require.Len(t, failed, 1)
	assert.Equal(t, files[1].LocalID, failed[0].LocalID)
	assert.Equal(t, "salary.pdf", failed[0].DisplayName)
}

func TestUploadCoordinator_Upload_AlreadyUploadedSkipsTransfer(t *testing.T) {
	fx := createTestUploadCoordinator(t)

	ctx := context.Background()
	files := []entity.UploadedFileRecord{
		{
			LocalID:     uuid.New(),
			DisplayName: "pension.pdf",
			Category:    entity.DocPension,
			RemoteURL:   "blob://docs/pension.pdf",
		},
	}

	attached, failed := fx.coordinator.Upload(ctx, "NF-2026-BBBB2222", files)

	assert.Len(t, attached, 1)
	assert.Equal(t, "blob://docs/pension.pdf", attached[0].RemoteURL)
	assert.Empty(t, failed)
	fx.storage.AssertNotCalled(t, "PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadCoordinator_Upload_LostPayloadFailsWithoutAttempt(t *testing.T) {
	fx := createTestUploadCoordinator(t)

	ctx := context.Background()
	files := []entity.UploadedFileRecord{
		{LocalID: uuid.New(), DisplayName: "ghost.pdf", Category: entity.DocDebts},
	}

	attached, failed := fx.coordinator.Upload(ctx, "NF-2026-CCCC3333", files)

	assert.Empty(t, attached)
	require.Len(t, failed, 1)
	assert.Equal(t, "ghost.pdf", failed[0].DisplayName)
}

func TestUploadCoordinator_Upload_EmptyBatch(t *testing.T) {
	fx := createTestUploadCoordinator(t)

	attached, failed := fx.coordinator.Upload(context.Background(), "NF-2026-DDDD4444", nil)

	assert.Empty(t, attached)
	assert.Empty(t, failed)
}
