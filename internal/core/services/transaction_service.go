package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	portssvc "github.com/eyobht/project_finance_app/internal/core/ports/services"
	"github.com/eyobht/project_finance_app/internal/dto"
)

// transactionService manages the quick-entry income/expense records and
// their categories. These sit outside the project ledger and carry no
// mutation policy.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("transaction amount must not be negative: %w", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Date:          req.Date,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction for update: %w", err)
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("transaction amount must not be negative: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// GetTransactionSummary totals income and expenses over all quick-entry
// transactions; balance is income minus expenses.
func (s *transactionService) GetTransactionSummary(ctx context.Context) (dto.TransactionSummaryResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return dto.TransactionSummaryResponse{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case domain.TxnIncome:
			income = income.Add(t.Amount)
		case domain.TxnExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return dto.TransactionSummaryResponse{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

func (s *transactionService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.txnRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *transactionService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	existing, err := s.txnRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, req.Name) && string(c.Type) == req.Type {
			return nil, fmt.Errorf("category %q: %w", req.Name, apperrors.ErrDuplicate)
		}
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.TransactionType(req.Type),
		Color:      req.Color,
	}

	if err := s.txnRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}
