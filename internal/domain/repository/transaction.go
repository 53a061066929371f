package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations obtained from the factory share the
	// same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one specific
// transaction, so a checkout's precondition check, ledger append and asset
// update all observe a single transactional boundary.
type RepositoryFactory interface {
	// AssetRepo returns an AssetRepository bound to the current transaction.
	AssetRepo() AssetRepository

	// TransactionRepo returns a TransactionRepository bound to the current transaction.
	TransactionRepo() TransactionRepository
}
