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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// intakeServiceFixtures holds all test dependencies for intake tests.
type intakeServiceFixtures struct {
	service   *intakeService
	draftRepo *mockRepo.MockDraftRepository
}

func createTestIntakeService(t *testing.T) intakeServiceFixtures {
	draftRepo := mockRepo.NewMockDraftRepository(t)
	service := NewIntakeService(IntakeServiceParams{
		DraftRepo: draftRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*intakeService)

	return intakeServiceFixtures{
		service:   service,
		draftRepo: draftRepo,
	}
}

func TestIntakeService_CreateDraft_Defaults(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()

	fx.draftRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.DraftState")).
		Return(nil)

	draft, err := fx.service.CreateDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.StepSituation, draft.CurrentStep)
	assert.Equal(t, entity.CategoryPrivate, draft.Profile.Category)
	assert.Equal(t, entity.DeliveryElectronic, draft.Profile.DeliveryMethod)
	assert.Equal(t, entity.DeadlineStandard, draft.Profile.Deadline)
	assert.False(t, draft.Profile.Certified)
}

func TestIntakeService_SaveDraft_DegradesToMemory(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	draft := &entity.DraftState{ID: uuid.New(), CurrentStep: entity.StepFamily}

	fx.draftRepo.EXPECT().
		Save(ctx, draft).
		Return(errors.New("store unavailable"))

	durable := fx.service.SaveDraft(ctx, draft)
	assert.False(t, durable)

	// The draft survives in the in-process cache even though the durable
	// store is down.
	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(nil, errors.New("store unavailable"))

	loaded, err := fx.service.LoadDraft(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, entity.StepFamily, loaded.CurrentStep)
}

func TestIntakeService_LoadDraft_NotFound(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.draftRepo.EXPECT().
		Find(ctx, id).
		Return(nil, repository.ErrDraftNotFound)

	draft, err := fx.service.LoadDraft(ctx, id)
	assert.Nil(t, draft)
	assert.Equal(t, domainerrors.ErrDraftNotFound, err)
}

func TestIntakeService_LoadDraft_FlagsLostPayloads(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.DraftState{
		ID:          id,
		CurrentStep: entity.StepDocuments,
		UploadedFiles: []entity.UploadedFileRecord{
			{DisplayName: "bank.pdf", Category: entity.DocBank},
			{DisplayName: "salary.pdf", Category: entity.DocSalary, RemoteURL: "blob://docs/salary.pdf"},
		},
	}

	fx.draftRepo.EXPECT().
		Find(ctx, id).
		Return(stored, nil)

	draft, err := fx.service.LoadDraft(ctx, id)
	require.NoError(t, err)
	assert.True(t, draft.UploadedFiles[0].NeedsReattachment)
	assert.False(t, draft.UploadedFiles[1].NeedsReattachment)
}

func TestIntakeService_ValidateAdvance_Situation(t *testing.T) {
	fx := createTestIntakeService(t)

	draft := &entity.DraftState{Profile: entity.Profile{
		Category:   entity.CategoryPrivate,
		Employment: entity.EmploymentEmployed,
	}}

	err := fx.service.ValidateAdvance(draft, entity.StepSituation)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	draft.Profile.Canton = "BE"
	err = fx.service.ValidateAdvance(draft, entity.StepSituation)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WORKPLACE_MISSING", appErr.ErrorCode())

	draft.Profile.Workplaces = []entity.Workplace{
		{Adult: 1, EmployerName: "Acme AG", Transport: entity.TransportNone},
	}
	assert.NoError(t, fx.service.ValidateAdvance(draft, entity.StepSituation))
}

func TestIntakeService_ValidateAdvance_DocumentsPostalWaiver(t *testing.T) {
	fx := createTestIntakeService(t)

	draft := &entity.DraftState{Profile: entity.Profile{
		Canton:         "ZH",
		Category:       entity.CategoryPrivate,
		Employment:     entity.EmploymentEmployed,
		DeliveryMethod: entity.DeliveryPostal,
	}}

	// Postal delivery waives every upload requirement.
	assert.NoError(t, fx.service.ValidateAdvance(draft, entity.StepDocuments))

	draft.Profile.DeliveryMethod = entity.DeliveryElectronic
	err := fx.service.ValidateAdvance(draft, entity.StepDocuments)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestIntakeService_ValidateAdvance_PaymentNeedsCertification(t *testing.T) {
	fx := createTestIntakeService(t)

	draft := &entity.DraftState{Profile: entity.Profile{}}

	err := fx.service.ValidateAdvance(draft, entity.StepPayment)
	assert.Equal(t, domainerrors.ErrCertificationMissing, err)

	draft.Profile.Certified = true
	assert.NoError(t, fx.service.ValidateAdvance(draft, entity.StepPayment))
}

func TestIntakeService_ClearDraft(t *testing.T) {
	fx := createTestIntakeService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.draftRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	require.NoError(t, fx.service.ClearDraft(ctx, id))
}
