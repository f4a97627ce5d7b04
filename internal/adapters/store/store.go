// Package store holds the ledger collections in memory and writes each one
// back to the external document store after every successful mutation. It is
// the single owner of all ledger state: consumers resolve references between
// entities through it at read time.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/eyobht/project_finance_app/internal/core/domain"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
)

// Document keys, one per collection. These match the keys the persisted
// state has always used, so existing documents load unchanged.
const (
	docKeyProjects     = "financial-projects"
	docKeyBudgets      = "financial-budgets"
	docKeyCurrencies   = "financial-currencies"
	docKeyExpenses     = "financial-expenses"
	docKeyStaff        = "financial-project-staff"
	docKeyTransactions = "financial-transactions"
	docKeyCategories   = "financial-categories"
)

// Store is the in-memory entity store backed by a DocumentStore. All reads
// and writes go through its mutex so the HTTP layer can call it freely.
type Store struct {
	mu   sync.RWMutex
	docs portsrepo.DocumentStore

	currencies   map[string]domain.Currency
	projects     map[string]domain.Project
	budgets      map[string]domain.Budget
	expenses     map[string]domain.Expense
	staff        map[string]domain.ProjectStaff
	transactions map[string]domain.Transaction
	categories   map[string]domain.Category
}

// New creates an empty store on top of the given document store. Call Load
// before serving traffic.
func New(docs portsrepo.DocumentStore) *Store {
	return &Store{
		docs:         docs,
		currencies:   make(map[string]domain.Currency),
		projects:     make(map[string]domain.Project),
		budgets:      make(map[string]domain.Budget),
		expenses:     make(map[string]domain.Expense),
		staff:        make(map[string]domain.ProjectStaff),
		transactions: make(map[string]domain.Transaction),
		categories:   make(map[string]domain.Category),
	}
}

// Load populates every collection from persisted state. Collections without
// a stored document keep their defaults: empty, except currencies and
// categories which are seeded (and persisted) on first run. A document that
// fails to parse is a fatal initialization error with no partial recovery.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	currenciesFound, err := loadCollection(ctx, s.docs, docKeyCurrencies, s.currencies, func(c domain.Currency) string { return c.CurrencyID })
	if err != nil {
		return err
	}
	if !currenciesFound {
		for _, c := range domain.DefaultCurrencies {
			s.currencies[c.CurrencyID] = c
		}
		if err := s.saveDoc(ctx, docKeyCurrencies, s.currencyList()); err != nil {
			return err
		}
	}

	categoriesFound, err := loadCollection(ctx, s.docs, docKeyCategories, s.categories, func(c domain.Category) string { return c.CategoryID })
	if err != nil {
		return err
	}
	if !categoriesFound {
		for _, c := range domain.DefaultCategories {
			s.categories[c.CategoryID] = c
		}
		if err := s.saveDoc(ctx, docKeyCategories, s.categoryList()); err != nil {
			return err
		}
	}

	if _, err := loadCollection(ctx, s.docs, docKeyProjects, s.projects, func(p domain.Project) string { return p.ProjectID }); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.docs, docKeyBudgets, s.budgets, func(b domain.Budget) string { return b.BudgetID }); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.docs, docKeyExpenses, s.expenses, func(e domain.Expense) string { return e.ExpenseID }); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.docs, docKeyStaff, s.staff, func(st domain.ProjectStaff) string { return st.StaffID }); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.docs, docKeyTransactions, s.transactions, func(t domain.Transaction) string { return t.TransactionID }); err != nil {
		return err
	}
	return nil
}

// loadCollection reads one JSON array document into the target map. The
// boolean reports whether a document existed at all.
func loadCollection[T any](ctx context.Context, docs portsrepo.DocumentStore, key string, target map[string]T, idOf func(T) string) (bool, error) {
	data, found, err := docs.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load document %q: %w", key, err)
	}
	if !found {
		return false, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return true, fmt.Errorf("corrupted document %q: %w", key, err)
	}
	for _, item := range items {
		target[idOf(item)] = item
	}
	return true, nil
}

// saveDoc marshals a collection slice and writes it under key. Callers must
// hold the write lock.
func (s *Store) saveDoc(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", key, err)
	}
	if err := s.docs.Save(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save document %q: %w", key, err)
	}
	return nil
}

// Snapshot is a copy of every collection, used by tests and diagnostics.
type Snapshot struct {
	Currencies   []domain.Currency
	Projects     []domain.Project
	Budgets      []domain.Budget
	Expenses     []domain.Expense
	Staff        []domain.ProjectStaff
	Transactions []domain.Transaction
	Categories   []domain.Category
}

// Ensure the store satisfies every repository facade.
var (
	_ portsrepo.CurrencyRepositoryFacade    = (*Store)(nil)
	_ portsrepo.ProjectRepositoryFacade     = (*Store)(nil)
	_ portsrepo.BudgetRepositoryFacade      = (*Store)(nil)
	_ portsrepo.ExpenseRepositoryFacade     = (*Store)(nil)
	_ portsrepo.StaffRepositoryFacade       = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
)

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Currencies:   s.currencyList(),
		Projects:     s.projectList(),
		Budgets:      s.budgetList(),
		Expenses:     s.expenseList(),
		Staff:        s.staffList(),
		Transactions: s.transactionList(),
		Categories:   s.categoryList(),
	}
}
