package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finmirror/finmirror/internal/pkg/models"
)

func testGraph() *models.ProviderGraph {
	return &models.ProviderGraph{
		Provider: &models.Provider{ID: uuid.New(), UserID: uuid.New()},
	}
}

func TestMergeAccount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	graph := testGraph()

	remote := &models.RemoteAccount{
		ExternalID:  "acct-1",
		Type:        "TRANSACTION",
		DisplayName: "Current Account",
		Currency:    "GBP",
	}

	account, isNew := mergeAccount(graph, remote, now)
	require.True(t, isNew)
	assert.Equal(t, graph.Provider.ID, account.ProviderID)
	assert.Equal(t, "Current Account", account.Name)
	assert.Equal(t, now, account.CreatedAt)

	graph.Accounts = append(graph.Accounts, account)

	t.Run("update only bumps updated-at", func(t *testing.T) {
		later := now.Add(time.Hour)
		renamed := &models.RemoteAccount{
			ExternalID:  "acct-1",
			Type:        "SAVINGS",
			DisplayName: "Renamed Account",
			Currency:    "EUR",
		}

		merged, isNew := mergeAccount(graph, renamed, later)
		require.False(t, isNew)
		assert.Same(t, account, merged)
		assert.Equal(t, "Current Account", merged.Name)
		assert.Equal(t, "TRANSACTION", merged.Type)
		assert.Equal(t, "GBP", merged.Currency)
		assert.Equal(t, later, merged.UpdatedAt)
	})
}

func TestMergeBalance(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	graph := testGraph()
	account := &models.Account{ID: uuid.New(), ProviderID: graph.Provider.ID, ExternalID: "acct-1"}
	graph.Accounts = append(graph.Accounts, account)

	remote := &models.RemoteBalance{
		Currency:  "GBP",
		Available: decimal.NewFromInt(100),
		Current:   decimal.NewFromInt(90),
	}

	balance, isNew := mergeBalance(graph, account, remote, now)
	require.True(t, isNew)
	assert.Equal(t, account.ID, balance.AccountID)
	assert.True(t, balance.Available.Equal(decimal.NewFromInt(100)))

	graph.Balances = append(graph.Balances, balance)

	t.Run("update overwrites amounts in place", func(t *testing.T) {
		later := now.Add(time.Hour)
		updated := &models.RemoteBalance{
			Currency:  "EUR",
			Available: decimal.NewFromInt(250),
			Current:   decimal.NewFromInt(240),
		}

		merged, isNew := mergeBalance(graph, account, updated, later)
		require.False(t, isNew)
		assert.Same(t, balance, merged)
		assert.True(t, merged.Available.Equal(decimal.NewFromInt(250)))
		assert.True(t, merged.Current.Equal(decimal.NewFromInt(240)))
		assert.Equal(t, "GBP", merged.Currency)
		assert.Equal(t, later, merged.UpdatedAt)
	})
}

func TestMergeTransaction(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	graph := testGraph()
	account := &models.Account{ID: uuid.New(), ProviderID: graph.Provider.ID, ExternalID: "acct-1"}
	graph.Accounts = append(graph.Accounts, account)

	remote := &models.RemoteTransaction{
		ExternalID:  "tx-1",
		Description: "COFFEE SHOP",
		Type:        "DEBIT",
		Category:    "PURCHASE",
		Amount:      decimal.NewFromFloat(-3.50),
		Currency:    "GBP",
		OccurredAt:  now.Add(-time.Hour),
		Tags:        []string{"food", "coffee"},
		Pending:     true,
	}

	txn, isNew := mergeTransaction(graph, account, remote, now)
	require.True(t, isNew)
	assert.True(t, txn.Pending)
	require.Len(t, txn.Classifications, 2)
	assert.Equal(t, "food", txn.Classifications[0].Name)
	assert.False(t, txn.Classifications[0].Custom)

	graph.Transactions = append(graph.Transactions, txn)

	t.Run("amount and description never change on update", func(t *testing.T) {
		later := now.Add(time.Hour)
		settled := &models.RemoteTransaction{
			ExternalID:  "tx-1",
			Description: "COFFEE SHOP LTD",
			Type:        "DEBIT",
			Category:    "PURCHASE",
			Amount:      decimal.NewFromFloat(-4.00),
			Currency:    "GBP",
			OccurredAt:  now,
			Pending:     false,
		}

		merged, isNew := mergeTransaction(graph, account, settled, later)
		require.False(t, isNew)
		assert.Same(t, txn, merged)
		assert.Equal(t, "COFFEE SHOP", merged.Description)
		assert.True(t, merged.Amount.Equal(decimal.NewFromFloat(-3.50)))
		assert.False(t, merged.Pending)
		assert.Equal(t, now, merged.OccurredAt)
		assert.Equal(t, later, merged.UpdatedAt)

		// Classifications are attached on create only
		assert.Len(t, merged.Classifications, 2)
	})
}

func TestMergeStandingOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	graph := testGraph()
	account := &models.Account{ID: uuid.New(), ProviderID: graph.Provider.ID, ExternalID: "acct-1"}
	graph.Accounts = append(graph.Accounts, account)

	nextDate := now.AddDate(0, 1, 0)
	remote := &models.RemoteStandingOrder{
		Reference:         "RENT",
		Payee:             "LANDLORD",
		Frequency:         "MONTHLY",
		Status:            "ACTIVE",
		Currency:          "GBP",
		NextPaymentDate:   &nextDate,
		NextPaymentAmount: decimal.NewFromInt(1200),
	}

	order, isNew := mergeStandingOrder(graph, account, remote, now)
	require.True(t, isNew)
	graph.StandingOrders = append(graph.StandingOrders, order)

	t.Run("matched by reference and payee", func(t *testing.T) {
		later := now.Add(time.Hour)
		updated := &models.RemoteStandingOrder{
			Reference:         "RENT",
			Payee:             "LANDLORD",
			Frequency:         "MONTHLY",
			Status:            "CANCELLED",
			Currency:          "GBP",
			NextPaymentAmount: decimal.NewFromInt(1250),
		}

		merged, isNew := mergeStandingOrder(graph, account, updated, later)
		require.False(t, isNew)
		assert.Same(t, order, merged)
		assert.Equal(t, "CANCELLED", merged.Status)
		assert.True(t, merged.NextPaymentAmount.Equal(decimal.NewFromInt(1250)))
		assert.Nil(t, merged.NextPaymentDate)
	})

	t.Run("same reference with different payee creates a new order", func(t *testing.T) {
		other := &models.RemoteStandingOrder{
			Reference: "RENT",
			Payee:     "NEW LANDLORD",
			Frequency: "MONTHLY",
			Status:    "ACTIVE",
			Currency:  "GBP",
		}

		created, isNew := mergeStandingOrder(graph, account, other, now)
		require.True(t, isNew)
		assert.NotEqual(t, order.ID, created.ID)
	})
}

func TestMergeDirectDebit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	graph := testGraph()
	account := &models.Account{ID: uuid.New(), ProviderID: graph.Provider.ID, ExternalID: "acct-1"}
	graph.Accounts = append(graph.Accounts, account)

	paidAt := now.AddDate(0, 0, -14)
	remote := &models.RemoteDirectDebit{
		ExternalID:            "dd-1",
		Name:                  "ELECTRIC CO",
		Status:                "ACTIVE",
		Currency:              "GBP",
		PreviousPaymentAt:     &paidAt,
		PreviousPaymentAmount: decimal.NewFromFloat(55.20),
	}

	debit, isNew := mergeDirectDebit(graph, account, remote, now)
	require.True(t, isNew)
	graph.DirectDebits = append(graph.DirectDebits, debit)

	t.Run("update overwrites every field", func(t *testing.T) {
		later := now.Add(time.Hour)
		updated := &models.RemoteDirectDebit{
			ExternalID:            "dd-1",
			Name:                  "ELECTRIC COMPANY",
			Status:                "INACTIVE",
			Currency:              "GBP",
			PreviousPaymentAmount: decimal.NewFromFloat(60.00),
		}

		merged, isNew := mergeDirectDebit(graph, account, updated, later)
		require.False(t, isNew)
		assert.Same(t, debit, merged)
		assert.Equal(t, "ELECTRIC COMPANY", merged.Name)
		assert.Equal(t, "INACTIVE", merged.Status)
		assert.Nil(t, merged.PreviousPaymentAt)
		assert.Equal(t, later, merged.UpdatedAt)
	})
}
