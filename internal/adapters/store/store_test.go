package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/eyobht/project_finance_app/internal/adapters/kv/filekv"
	"github.com/eyobht/project_finance_app/internal/adapters/store"
	"github.com/eyobht/project_finance_app/internal/apperrors"
	"github.com/eyobht/project_finance_app/internal/core/domain"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	docs  *filekv.FileStore
	store *store.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	docs, err := filekv.New(suite.dir)
	suite.Require().NoError(err)
	suite.docs = docs
	suite.store = store.New(docs)
	suite.Require().NoError(suite.store.Load(context.Background()))
}

// reload opens a fresh store over the same directory, simulating a restart.
func (suite *StoreTestSuite) reload() *store.Store {
	docs, err := filekv.New(suite.dir)
	suite.Require().NoError(err)
	s := store.New(docs)
	suite.Require().NoError(s.Load(context.Background()))
	return s
}

func (suite *StoreTestSuite) TestLoad_SeedsDefaultsOnFirstRun() {
	snap := suite.store.Snapshot()

	suite.Len(snap.Currencies, len(domain.DefaultCurrencies))
	var sawDefault bool
	for _, c := range snap.Currencies {
		if c.IsDefault {
			sawDefault = true
		}
	}
	suite.True(sawDefault, "seed must include a default currency")

	suite.Len(snap.Categories, len(domain.DefaultCategories))

	suite.Empty(snap.Projects)
	suite.Empty(snap.Budgets)
	suite.Empty(snap.Expenses)
	suite.Empty(snap.Staff)
	suite.Empty(snap.Transactions)
}

func (suite *StoreTestSuite) TestLoad_SeedIsPersisted() {
	// A second store over the same directory must read the seeded documents
	// rather than reseeding.
	other := suite.reload()
	suite.Equal(suite.store.Snapshot(), other.Snapshot())
}

func (suite *StoreTestSuite) TestRoundTrip_AllCollections() {
	ctx := context.Background()
	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.store.SaveProject(ctx, domain.Project{
		ProjectID: "p1", Name: "Water Supply", Description: "Boreholes", CreatedAt: now,
	}))
	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{
		BudgetID: "b1", ProjectID: "p1", Amount: decimal.NewFromInt(1000), CurrencyID: "usd", CreatedAt: now,
	}))
	suite.Require().NoError(suite.store.SaveExpense(ctx, domain.Expense{
		ExpenseID: "e1", ProjectID: "p1", BudgetID: "b1", Amount: decimal.NewFromInt(300),
		CurrencyID: "usd", Description: "Drilling", Date: now, RequestedBy: "Abebe",
		Status: domain.StatusPending, CreatedAt: now, IsLocked: true,
	}))
	suite.Require().NoError(suite.store.SaveStaff(ctx, domain.ProjectStaff{
		StaffID: "s1", FullName: "Hana Bekele", Zone: "East", Wereda: "W01",
		Phone: "0911000000", ProjectID: "p1", CreatedAt: now,
	}))
	suite.Require().NoError(suite.store.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1", Type: domain.TxnIncome, Amount: decimal.NewFromInt(2000),
		CategoryID: "salary", Date: now,
	}))

	other := suite.reload()
	suite.Equal(suite.store.Snapshot(), other.Snapshot())
}

func (suite *StoreTestSuite) TestDeleteProjectCascade() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	suite.Require().NoError(suite.store.SaveProject(ctx, domain.Project{ProjectID: "p1", Name: "Doomed", CreatedAt: now}))
	suite.Require().NoError(suite.store.SaveProject(ctx, domain.Project{ProjectID: "p2", Name: "Survivor", CreatedAt: now.Add(time.Second)}))
	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{BudgetID: "b1", ProjectID: "p1", Amount: decimal.NewFromInt(1000)}))
	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{BudgetID: "b2", ProjectID: "p2", Amount: decimal.NewFromInt(700)}))
	suite.Require().NoError(suite.store.SaveExpense(ctx, domain.Expense{ExpenseID: "e1", ProjectID: "p1", Amount: decimal.NewFromInt(300), IsLocked: true}))
	suite.Require().NoError(suite.store.SaveStaff(ctx, domain.ProjectStaff{StaffID: "s1", ProjectID: "p1", FullName: "Hana"}))

	suite.Require().NoError(suite.store.DeleteProjectCascade(context.Background(), "p1"))

	snap := suite.store.Snapshot()
	suite.Len(snap.Projects, 1)
	suite.Equal("p2", snap.Projects[0].ProjectID)
	suite.Len(snap.Budgets, 1)
	suite.Equal("b2", snap.Budgets[0].BudgetID)
	suite.Empty(snap.Expenses, "locked expenses are removed by the cascade")
	suite.Empty(snap.Staff)

	// The cascade result must survive a restart.
	other := suite.reload()
	suite.Equal(snap, other.Snapshot())
}

func (suite *StoreTestSuite) TestFind_NotFound() {
	ctx := context.Background()

	_, err := suite.store.FindProjectByID(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.store.FindExpenseByID(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.store.DeleteProjectCascade(ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestListBudgetsByProject_FiltersAndSorts() {
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{BudgetID: "b2", ProjectID: "p1", Amount: decimal.NewFromInt(2), CreatedAt: base.Add(time.Hour)}))
	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{BudgetID: "b1", ProjectID: "p1", Amount: decimal.NewFromInt(1), CreatedAt: base}))
	suite.Require().NoError(suite.store.SaveBudget(ctx, domain.Budget{BudgetID: "b3", ProjectID: "p9", Amount: decimal.NewFromInt(3), CreatedAt: base}))

	budgets, err := suite.store.ListBudgetsByProject(ctx, "p1")
	suite.Require().NoError(err)
	suite.Require().Len(budgets, 2)
	suite.Equal("b1", budgets[0].BudgetID)
	suite.Equal("b2", budgets[1].BudgetID)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestLoad_CorruptedDocumentIsFatal(t *testing.T) {
	dir := t.TempDir()
	docs, err := filekv.New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, docs.Save(ctx, "financial-projects", []byte("{not json")))

	s := store.New(docs)
	err = s.Load(ctx)
	require.Error(t, err, "a corrupted document must fail initialization")
}
