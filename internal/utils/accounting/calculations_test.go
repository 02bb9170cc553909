package accounting_test

import (
	"testing"
	"time"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/mcosta87/budget-ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, amount string, txnType domain.TransactionType, date time.Time, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: txnType,
		TransactionDate: date,
		CreatedAt:       createdAt,
	}
}

func TestCalculateBalance(t *testing.T) {
	day1 := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)

	t.Run("empty yields zero", func(t *testing.T) {
		assert.True(t, accounting.CalculateBalance(nil).IsZero())
		assert.True(t, accounting.CalculateBalance([]domain.Transaction{}).IsZero())
	})

	t.Run("single credit", func(t *testing.T) {
		balance := accounting.CalculateBalance([]domain.Transaction{
			txn("t1", "100.00", domain.Credit, day1, day1),
		})
		assert.True(t, balance.Equal(decimal.RequireFromString("100.00")), "got %s", balance)
	})

	t.Run("credit then debit", func(t *testing.T) {
		balance := accounting.CalculateBalance([]domain.Transaction{
			txn("t1", "100.00", domain.Credit, day1, day1),
			txn("t2", "30.00", domain.Debit, day2, day2),
		})
		assert.True(t, balance.Equal(decimal.RequireFromString("70.00")), "got %s", balance)
	})

	t.Run("invariant under input reordering", func(t *testing.T) {
		inOrder := []domain.Transaction{
			txn("t1", "100.00", domain.Credit, day1, day1),
			txn("t2", "30.00", domain.Debit, day2, day2),
			txn("t3", "12.34", domain.Credit, day2, day2.Add(time.Hour)),
		}
		reversed := []domain.Transaction{inOrder[2], inOrder[0], inOrder[1]}

		assert.True(t, accounting.CalculateBalance(inOrder).Equal(accounting.CalculateBalance(reversed)))
	})

	t.Run("not invariant under amount change", func(t *testing.T) {
		original := []domain.Transaction{txn("t1", "100.00", domain.Credit, day1, day1)}
		altered := []domain.Transaction{txn("t1", "100.01", domain.Credit, day1, day1)}
		assert.False(t, accounting.CalculateBalance(original).Equal(accounting.CalculateBalance(altered)))
	})
}

func TestCalculateRunningBalances(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	// Same-day transactions break ties by creation time, so t1 applies first
	// even though it appears last in the input.
	transactions := []domain.Transaction{
		txn("t3", "50.00", domain.Debit, day, day.Add(2*time.Minute)),
		txn("t2", "200.00", domain.Credit, day, day.Add(time.Minute)),
		txn("t1", "100.00", domain.Credit, day, day),
	}

	balances := accounting.CalculateRunningBalances(transactions)
	require.Len(t, balances, 3)

	assert.True(t, balances["t1"].Equal(decimal.RequireFromString("100.00")), "t1: %s", balances["t1"])
	assert.True(t, balances["t2"].Equal(decimal.RequireFromString("300.00")), "t2: %s", balances["t2"])
	assert.True(t, balances["t3"].Equal(decimal.RequireFromString("250.00")), "t3: %s", balances["t3"])
}

func TestIsOverBudget(t *testing.T) {
	hundred := decimal.RequireFromString("100.00")

	assert.True(t, accounting.IsOverBudget(decimal.RequireFromString("100.01"), hundred))
	assert.False(t, accounting.IsOverBudget(hundred, hundred), "equal balance is not over budget")
	assert.False(t, accounting.IsOverBudget(decimal.RequireFromString("99.99"), hundred))
}

func TestGenerateBudgetWarning(t *testing.T) {
	budget := decimal.RequireFromString("100.00")

	t.Run("over budget mentions overage", func(t *testing.T) {
		warning := accounting.GenerateBudgetWarning(decimal.RequireFromString("150.00"), budget)
		require.NotNil(t, warning)
		assert.Contains(t, *warning, "150.00")
		assert.Contains(t, *warning, "100.00")
		assert.Contains(t, *warning, "50.00")
	})

	t.Run("under budget yields no message", func(t *testing.T) {
		assert.Nil(t, accounting.GenerateBudgetWarning(decimal.RequireFromString("80.00"), budget))
	})
}
