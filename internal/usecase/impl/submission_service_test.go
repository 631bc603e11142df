package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainerrors "neofidu/internal/domain/errors"
	"neofidu/internal/domain/entity"
	"neofidu/internal/domain/repository"
	"neofidu/internal/domain/service"
	mockRepo "neofidu/internal/mocks/repository"
	mockSvc "neofidu/internal/mocks/service"
	mockUC "neofidu/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// submissionServiceFixtures holds all test dependencies for the saga tests.
type submissionServiceFixtures struct {
	service         *submissionService
	submissionRepo  *mockRepo.MockSubmissionRepository
	draftRepo       *mockRepo.MockDraftRepository
	uploads         *mockUC.MockUploadCoordinator
	paymentSvc      *mockSvc.MockPaymentService
	notificationSvc *mockSvc.MockNotificationService
}

func createTestSubmissionService(t *testing.T) submissionServiceFixtures {
	submissionRepo := mockRepo.NewMockSubmissionRepository(t)
	draftRepo := mockRepo.NewMockDraftRepository(t)
	uploads := mockUC.NewMockUploadCoordinator(t)
	paymentSvc := mockSvc.NewMockPaymentService(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	// Transactions pass straight through to the repository mocks.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewSubmissionRepository().Return(submissionRepo).Maybe()
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	svc := NewSubmissionService(SubmissionServiceParams{
		TxManager:       txManager,
		SubmissionRepo:  submissionRepo,
		DraftRepo:       draftRepo,
		Uploads:         uploads,
		PaymentSvc:      paymentSvc,
		NotificationSvc: notificationSvc,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*submissionService)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	return submissionServiceFixtures{
		service:         svc,
		submissionRepo:  submissionRepo,
		draftRepo:       draftRepo,
		uploads:         uploads,
		paymentSvc:      paymentSvc,
		notificationSvc: notificationSvc,
	}
}

func certifiedCoupleDraft() *entity.DraftState {
	return &entity.DraftState{
		ID:          uuid.New(),
		CurrentStep: entity.StepPayment,
		Profile: entity.Profile{
			Canton:            "ZH",
			Category:          entity.CategoryCouple,
			Employment:        entity.EmploymentEmployed,
			EmploymentPartner: entity.EmploymentEmployed,
			HasChildren:       true,
			ChildrenCount:     2,
			Workplaces: []entity.Workplace{
				{ID: uuid.New(), Adult: 1, EmployerName: "Acme AG", Transport: entity.TransportTrain},
				{ID: uuid.New(), Adult: 2, EmployerName: "Beta GmbH", Transport: entity.TransportCar},
			},
			DeliveryMethod: entity.DeliveryElectronic,
			Deadline:       entity.DeadlineStandard,
			Certified:      true,
		},
	}
}

func TestSubmissionService_Submit_NewDraft(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(nil, repository.ErrSubmissionNotFound).
		Once()

	var created *entity.SubmissionRecord
	fx.submissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubmissionRecord")).
		Run(func(_ context.Context, record *entity.SubmissionRecord) {
			created = record
		}).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	fx.draftRepo.EXPECT().
		Save(ctx, draft).
		Return(nil)

	fx.paymentSvc.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.PaymentRequest")).
		Return(&service.PaymentSession{SessionID: "sess-1", RedirectURL: "https://pay.example/sess-1"}, nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, mock.AnythingOfType("string"), entity.StatusAwaitingPayment).
		Return(nil)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.True(t, strings.HasPrefix(receipt.Reference, "NF-2026-"))
	assert.EqualValues(t, 9000, receipt.Price.Total)
	assert.Equal(t, "https://pay.example/sess-1", receipt.PaymentURL)

	require.NotNil(t, created)
	assert.Equal(t, entity.StatusSaved, created.Status)
	assert.Equal(t, draft.ID, created.DraftID)
	assert.EqualValues(t, 9000, created.TotalCentimes)
	assert.Equal(t, "CHF", created.Currency)
	assert.Equal(t, receipt.Reference, draft.Reference)
}

func TestSubmissionService_Submit_NotCertified(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	draft.Profile.Certified = false

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrCertificationMissing, err)
}

func TestSubmissionService_Submit_ExistingReferenceReused(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	draft.Reference = "NF-2026-AB12CD34"

	existing := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       draft.Reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		TotalCentimes:   9000,
		Currency:        "CHF",
		Status:          entity.StatusAwaitingPayment,
	}

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, draft.Reference).
		Return(existing, nil)

	fx.paymentSvc.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.PaymentRequest")).
		Return(&service.PaymentSession{SessionID: "sess-2", RedirectURL: "https://pay.example/sess-2"}, nil)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	require.NoError(t, err)
	assert.Equal(t, existing.Reference, receipt.Reference)
}

func TestSubmissionService_Submit_DuplicateCreateAdoptsExisting(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()

	existing := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       "NF-2026-11223344",
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		TotalCentimes:   9000,
		Currency:        "CHF",
		Status:          entity.StatusSaved,
	}

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(nil, repository.ErrSubmissionNotFound).
		Once()

	fx.submissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubmissionRecord")).
		Return(repository.ErrDuplicateSubmission)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(existing, nil).
		Once()

	fx.draftRepo.EXPECT().
		Save(ctx, draft).
		Return(nil)

	fx.paymentSvc.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.PaymentRequest")).
		Return(&service.PaymentSession{SessionID: "sess-3", RedirectURL: "https://pay.example/sess-3"}, nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, existing.Reference, entity.StatusAwaitingPayment).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	require.NoError(t, err)
	assert.Equal(t, existing.Reference, receipt.Reference)
}

func TestSubmissionService_Submit_PersistenceExhausted(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(nil, repository.ErrSubmissionNotFound).
		Once()

	fx.submissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubmissionRecord")).
		Return(errors.New("connection refused")).
		Times(createAttempts)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	assert.Nil(t, receipt)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PERSISTENCE_FAILED", appErr.ErrorCode())
}

func TestSubmissionService_Submit_PaymentSessionFailureLeavesSaved(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(nil, repository.ErrSubmissionNotFound).
		Once()

	fx.submissionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubmissionRecord")).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	fx.draftRepo.EXPECT().
		Save(ctx, draft).
		Return(nil)

	fx.paymentSvc.EXPECT().
		CreateSession(ctx, mock.AnythingOfType("service.PaymentRequest")).
		Return(nil, errors.New("provider unavailable"))

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	assert.Nil(t, receipt)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_SESSION_FAILED", appErr.ErrorCode())

	// No AwaitingPayment transition was recorded; the record stays Saved
	// and the client can retry with the same reference.
	fx.submissionRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, entity.StatusAwaitingPayment)
}

func TestSubmissionService_Submit_ReplayAfterPaymentOpensNoSession(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	draft.Reference = "NF-2026-11223344"

	paid := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       draft.Reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		TotalCentimes:   9000,
		Currency:        "CHF",
		Status:          entity.StatusPaid,
		TransactionID:   "tx-already-paid",
	}

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, draft.Reference).
		Return(paid, nil)

	receipt, err := fx.service.Submit(ctx, draft.ID, "client@example.ch")
	require.NoError(t, err)
	require.NotNil(t, receipt)

	// The paid reference must never be charged again: no new session, no
	// redirect URL, and the status is left untouched.
	assert.Equal(t, paid.Reference, receipt.Reference)
	assert.Empty(t, receipt.PaymentURL)
	fx.paymentSvc.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
	fx.submissionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmissionService_ConfirmPayment_InvalidSignal(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()

	fx.paymentSvc.EXPECT().
		VerifyConfirmation(ctx, "garbage").
		Return(nil, errors.New("bad signature"))

	err := fx.service.ConfirmPayment(ctx, "garbage")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PAYMENT_CONFIRMATION_INVALID", appErr.ErrorCode())
}

func TestSubmissionService_ConfirmPayment_ReplayOnCompleted(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	reference := "NF-2026-55667788"

	fx.paymentSvc.EXPECT().
		VerifyConfirmation(ctx, "payload").
		Return(&service.PaymentConfirmation{Reference: reference, TransactionID: "tx-9"}, nil)

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(&entity.SubmissionRecord{Reference: reference, Status: entity.StatusCompleted}, nil)

	err := fx.service.ConfirmPayment(ctx, "payload")
	require.NoError(t, err)

	fx.submissionRepo.AssertNotCalled(t, "SetTransaction", mock.Anything, mock.Anything, mock.Anything)
	fx.submissionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmissionService_ConfirmPayment_DrivesCompletion(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	reference := "NF-2026-99AABBCC"
	draft.Reference = reference
	draft.UploadedFiles = []entity.UploadedFileRecord{
		{
			LocalID:     uuid.New(),
			DisplayName: "salary-2025.pdf",
			Category:    entity.DocSalary,
			Payload:     []byte("pdf-bytes"),
		},
	}

	awaiting := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		TotalCentimes:   9000,
		Currency:        "CHF",
		Status:          entity.StatusAwaitingPayment,
	}
	paid := &entity.SubmissionRecord{}
	*paid = *awaiting
	paid.Status = entity.StatusPaid
	paid.TransactionID = "tx-1"

	fx.paymentSvc.EXPECT().
		VerifyConfirmation(ctx, "payload").
		Return(&service.PaymentConfirmation{Reference: reference, TransactionID: "tx-1"}, nil)

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(awaiting, nil).
		Once()

	fx.submissionRepo.EXPECT().
		SetTransaction(ctx, reference, "tx-1").
		Return(nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusPaid).
		Return(nil)

	// Finalize re-reads the record after the paid transition.
	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(paid, nil).
		Once()

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusFinalizing).
		Return(nil)

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	attached := []entity.AttachedDocument{
		{Category: entity.DocSalary, DisplayName: "salary-2025.pdf", RemoteURL: "blob://docs/salary-2025.pdf"},
	}
	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, draft.UploadedFiles).
		Return(attached, nil)

	fx.submissionRepo.EXPECT().
		RecordUploadOutcome(ctx, reference, attached, mock.Anything, false).
		Return(nil)

	fx.notificationSvc.EXPECT().
		SendSummary(ctx, reference, attached, mock.Anything).
		Return(nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusCompleted).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	fx.draftRepo.EXPECT().
		Delete(ctx, draft.ID).
		Return(nil)

	err := fx.service.ConfirmPayment(ctx, "payload")
	require.NoError(t, err)
}

func TestSubmissionService_Finalize_UploadFailuresNeedFollowUp(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	reference := "NF-2026-DEADBEEF"
	draft.Reference = reference
	goodFile := entity.UploadedFileRecord{
		LocalID:     uuid.New(),
		DisplayName: "bank.pdf",
		Category:    entity.DocBank,
		Payload:     []byte("ok"),
	}
	badFile := entity.UploadedFileRecord{
		LocalID:     uuid.New(),
		DisplayName: "insurance.pdf",
		Category:    entity.DocInsurance,
		Payload:     []byte("broken"),
	}
	draft.UploadedFiles = []entity.UploadedFileRecord{goodFile, badFile}

	record := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		Status:          entity.StatusPaid,
	}

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(record, nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusFinalizing).
		Return(nil)

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	attached := []entity.AttachedDocument{
		{Category: entity.DocBank, DisplayName: "bank.pdf", RemoteURL: "blob://docs/bank.pdf"},
	}
	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, draft.UploadedFiles).
		Return(attached, []entity.UploadedFileRecord{badFile}).
		Once()

	// Only the failed remainder is retried, and it fails again.
	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, []entity.UploadedFileRecord{badFile}).
		Return(nil, []entity.UploadedFileRecord{badFile}).
		Once()

	fx.submissionRepo.EXPECT().
		RecordUploadOutcome(ctx, reference, attached, []string{"insurance.pdf"}, true).
		Return(nil)

	fx.notificationSvc.EXPECT().
		SendSummary(ctx, reference, attached, []string{"insurance.pdf"}).
		Return(nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusCompleted).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	fx.draftRepo.EXPECT().
		Delete(ctx, draft.ID).
		Return(nil)

	err := fx.service.Finalize(ctx, reference)
	require.NoError(t, err)
}

func TestSubmissionService_Finalize_RetryDistinguishesSameDisplayName(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	reference := "NF-2026-CAFEBABE"
	draft.Reference = reference

	// Two categories can legitimately carry a file with the same name; the
	// retry must pick the failed record, not everything with that name.
	bankStatement := entity.UploadedFileRecord{
		LocalID:     uuid.New(),
		DisplayName: "statement.pdf",
		Category:    entity.DocBank,
		Payload:     []byte("bank"),
	}
	debtStatement := entity.UploadedFileRecord{
		LocalID:     uuid.New(),
		DisplayName: "statement.pdf",
		Category:    entity.DocDebts,
		Payload:     []byte("debts"),
	}
	draft.UploadedFiles = []entity.UploadedFileRecord{bankStatement, debtStatement}

	record := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		Status:          entity.StatusPaid,
	}

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(record, nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusFinalizing).
		Return(nil)

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	bankAttached := []entity.AttachedDocument{
		{Category: entity.DocBank, DisplayName: "statement.pdf", RemoteURL: "blob://docs/bank/statement.pdf"},
	}
	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, draft.UploadedFiles).
		Return(bankAttached, []entity.UploadedFileRecord{debtStatement}).
		Once()

	debtAttached := []entity.AttachedDocument{
		{Category: entity.DocDebts, DisplayName: "statement.pdf", RemoteURL: "blob://docs/debts/statement.pdf"},
	}
	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, []entity.UploadedFileRecord{debtStatement}).
		Return(debtAttached, nil).
		Once()

	allAttached := append(append([]entity.AttachedDocument{}, bankAttached...), debtAttached...)
	fx.submissionRepo.EXPECT().
		RecordUploadOutcome(ctx, reference, allAttached, []string(nil), false).
		Return(nil)

	fx.notificationSvc.EXPECT().
		SendSummary(ctx, reference, allAttached, []string(nil)).
		Return(nil)

	fx.submissionRepo.EXPECT().
		UpdateStatus(ctx, reference, entity.StatusCompleted).
		Return(nil)

	fx.submissionRepo.EXPECT().
		AppendStatusHistory(ctx, mock.AnythingOfType("*entity.StatusHistoryEntry")).
		Return(nil)

	fx.draftRepo.EXPECT().
		Delete(ctx, draft.ID).
		Return(nil)

	err := fx.service.Finalize(ctx, reference)
	require.NoError(t, err)
}

func TestSubmissionService_Finalize_SummaryFailureStaysRetryable(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	reference := "NF-2026-0BADF00D"
	draft.Reference = reference

	record := &entity.SubmissionRecord{
		ID:              uuid.New(),
		Reference:       reference,
		DraftID:         draft.ID,
		ProfileSnapshot: draft.Profile,
		Status:          entity.StatusFinalizing,
	}

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(record, nil)

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.uploads.EXPECT().
		Upload(mock.Anything, reference, mock.Anything).
		Return(nil, nil)

	fx.submissionRepo.EXPECT().
		RecordUploadOutcome(ctx, reference, mock.Anything, mock.Anything, false).
		Return(nil)

	fx.notificationSvc.EXPECT().
		SendSummary(ctx, reference, mock.Anything, mock.Anything).
		Return(errors.New("mail gateway down"))

	err := fx.service.Finalize(ctx, reference)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FINALIZATION_FAILED", appErr.ErrorCode())

	fx.submissionRepo.AssertNotCalled(t, "UpdateStatus", ctx, reference, entity.StatusCompleted)
}

func TestSubmissionService_Finalize_CompletedIsNoOp(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	reference := "NF-2026-C0FFEE00"

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, reference).
		Return(&entity.SubmissionRecord{Reference: reference, Status: entity.StatusCompleted}, nil)

	err := fx.service.Finalize(ctx, reference)
	require.NoError(t, err)
}

func TestSubmissionService_Resume_NoSubmission(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	draft.CurrentStep = entity.StepFinancials

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByDraftID(ctx, draft.ID).
		Return(nil, repository.ErrSubmissionNotFound)

	view, err := fx.service.Resume(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepFinancials, view.ResumeStep)
	assert.Nil(t, view.Submission)
}

func TestSubmissionService_Resume_AwaitingPaymentShowsPaymentStep(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()
	draft := certifiedCoupleDraft()
	draft.Reference = "NF-2026-12312312"

	record := &entity.SubmissionRecord{
		Reference: draft.Reference,
		DraftID:   draft.ID,
		Status:    entity.StatusAwaitingPayment,
	}

	fx.draftRepo.EXPECT().
		Find(ctx, draft.ID).
		Return(draft, nil)

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, draft.Reference).
		Return(record, nil)

	view, err := fx.service.Resume(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, view.ResumeStep)
	assert.Equal(t, record, view.Submission)
}

func TestSubmissionService_Track_NotFound(t *testing.T) {
	fx := createTestSubmissionService(t)

	ctx := context.Background()

	fx.submissionRepo.EXPECT().
		FindByReference(ctx, "NF-2026-00000000").
		Return(nil, repository.ErrSubmissionNotFound)

	view, err := fx.service.Track(ctx, "NF-2026-00000000")
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrSubmissionNotFound, err)
}
