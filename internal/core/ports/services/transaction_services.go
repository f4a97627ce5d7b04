package services

import (
	"context"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations for quick-entry transactions
type TransactionReaderSvc interface {
	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransactionSummary returns total income, total expenses and balance.
	GetTransactionSummary(ctx context.Context) (dto.TransactionSummaryResponse, error)

	// ListCategories retrieves all transaction categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionWriterSvc defines write operations for quick-entry transactions
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to a transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
}

// TransactionSvcFacade combines transaction and category service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
