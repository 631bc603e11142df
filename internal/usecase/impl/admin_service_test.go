package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
	mockRepo "neofidu/internal/mocks/repository"
	mockSvc "neofidu/internal/mocks/service"
	"neofidu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin tests.
type adminServiceFixtures struct {
	service         usecase.AdminUsecase
	submissionRepo  *mockRepo.MockSubmissionRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubmissionRepository().Return(submissionRepo).Maybe()
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	service := NewAdminService(AdminServiceParams{
		TxManager:       txManager,
		SubmissionRepo:  submissionRepo,
		NotificationSvc: notificationSvc,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return adminServiceFixtures{
		service:         service,
		submissionRepo:  submissionRepo,
		notificationSvc: notificationSvc,
	}
}

func TestAdminService_ListRequests(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	filter := repository.SubmissionFilter{
		Statuses: []entity.SubmissionStatus{entity.StatusPaid},
		Canton:   "ZH",
		Limit:    20,
	}
	expected := []*entity.SubmissionRecord{
		{ID: uuid.New(), Reference: "NF-2026-00000001", Status: entity.StatusPaid},
	}

	fx.submissionRepo.EXPECT().
		List(ctx, filter).
		Return(expected, nil)

	records, err := fx.service.ListRequests(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}

func TestAdminService_UpdateRequestStatus_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	reference := "NF-2026-00000002"
	record := &entity.SubmissionRecord{
		Reference: reference,
		Status:    entity.StatusFinalizing,
	}

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(record, nil)

	fx.notificationSvc.EXPECT().
		SendStatusChange(ctx, reference, entity.StatusFinalizing, entity.StatusCompleted).
		Return(nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusCompleted).
		Return(nil)

	var entry *entity.StatusHistoryEntry
	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Run(func(_ context.Context, e *entity.StatusHistoryEntry) {
			entry = e
		}).
		Return(nil)

	err := fx.service.UpdateRequestStatus(ctx, reference, entity.StatusCompleted, entity.StatusFinalizing, "operator:anna", true)
	require.NoError(t, err)

	require.NotNil(t, entry)
	assert.Equal(t, entity.StatusFinalizing, entry.OldStatus)
	assert.Equal(t, entity.StatusCompleted, entry.NewStatus)
	assert.Equal(t, "operator:anna", entry.Actor)
	assert.True(t, entry.Notified)
}

func TestAdminService_UpdateRequestStatus_NotificationFailureStillApplies(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	reference := "NF-2026-00000003"
	record := &entity.SubmissionRecord{
		Reference: reference,
		Status:    entity.StatusPaid,
	}

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(record, nil)

	fx.notificationSvc.EXPECT().
		SendStatusChange(ctx, reference, entity.StatusPaid, entity.StatusFinalizing).
		Return(errors.New("mail gateway down"))

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusFinalizing).
		Return(nil)

	var entry *entity.StatusHistoryEntry
	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Run(func(_ context.Context, e *entity.StatusHistoryEntry) {
			entry = e
		}).
		Return(nil)

	err := fx.service.UpdateRequestStatus(ctx, reference, entity.StatusFinalizing, entity.StatusPaid, "operator:anna", true)
	require.NoError(t, err)

	require.NotNil(t, entry)
	assert.False(t, entry.Notified)
}

func TestAdminService_UpdateRequestStatus_StaleOldStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	reference := "NF-2026-00000004"

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(&entity.SubmissionRecord{Reference: reference, Status: entity.StatusPaid}, nil)

	err := fx.service.UpdateRequestStatus(ctx, reference, entity.StatusFailed, entity.StatusAwaitingPayment, "operator:anna", false)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATUS_CONFLICT", appErr.ErrorCode())
}

func TestAdminService_UpdateRequestStatus_TerminalIsImmutable(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	reference := "NF-2026-00000005"

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(&entity.SubmissionRecord{Reference: reference, Status: entity.StatusCompleted}, nil)

	err := fx.service.UpdateRequestStatus(ctx, reference, entity.StatusFailed, entity.StatusCompleted, "operator:anna", false)
	assert.Equal(t, domainerrors.ErrSubmissionImmutable, err)
}

func TestAdminService_UpdateRequestStatus_IllegalTransition(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	reference := "NF-2026-00000006"

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(&entity.SubmissionRecord{Reference: reference, Status: entity.StatusAwaitingPayment}, nil)

	err := fx.service.UpdateRequestStatus(ctx, reference, entity.StatusCompleted, entity.StatusAwaitingPayment, "operator:anna", false)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STATUS_TRANSITION_INVALID", appErr.ErrorCode())
}

func TestAdminService_GetRequest_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, "NF-2026-00000007").
		Return(nil, repository.ErrSubmissionNotFound)

	record, err := fx.service.GetRequest(ctx, "NF-2026-00000007")
	assert.Nil(t, record)
	assert.Equal(t, domainerrors.ErrSubmissionNotFound, err)
}
