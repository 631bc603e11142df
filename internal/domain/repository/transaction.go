package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions, so the use case layer can group writes atomically without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory yields repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewSubmissionRepository returns a SubmissionRepository bound to the
	// current transaction.
	NewSubmissionRepository() SubmissionRepository

	// NewDraftRepository returns a DraftRepository bound to the current
	// transaction.
	NewDraftRepository() DraftRepository
}
