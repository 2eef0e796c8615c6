package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. This allows the use case layer to handle transactions
// without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the
	// function returns an error, the transaction is rolled back,
	// otherwise it is committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction. ID allocation and the purchase flow run through it so
// their read-then-write sequences stay atomic.
type RepositoryFactory interface {
	// NewProductRepository returns a ProductRepository bound to the
	// current transaction.
	NewProductRepository() ProductRepository

	// NewPurchaseRepository returns a PurchaseRepository bound to the
	// current transaction.
	NewPurchaseRepository() PurchaseRepository

	// NewUserRepository returns a UserRepository bound to the current
	// transaction.
	NewUserRepository() UserRepository
}
