package repositories

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for quick-entry transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for quick-entry transactions
type TransactionWriter interface {
	// SaveTransaction inserts or updates a transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// CategoryReader defines read operations for transaction categories
type CategoryReader interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for transaction categories
type CategoryWriter interface {
	// SaveCategory inserts or updates a category.
	SaveCategory(ctx context.Context, category domain.Category) error
}

// TransactionRepositoryFacade combines transaction and category repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	CategoryReader
	CategoryWriter
}
