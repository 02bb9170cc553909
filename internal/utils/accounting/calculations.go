package accounting

import (
	"fmt"
	"sort"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sortChronologically orders transactions by transaction date ascending, with
// creation timestamp as the tie-break for same-day entries. The input slice is
// not modified. This ordering makes balance replay deterministic regardless of
// how callers assembled the slice.
func sortChronologically(transactions []domain.Transaction) []domain.Transaction {
	ordered := make([]domain.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].TransactionDate.Equal(ordered[j].TransactionDate) {
			return ordered[i].TransactionDate.Before(ordered[j].TransactionDate)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

// CalculateBalance folds an ordered transaction history into a balance:
// credits add, debits subtract. An empty or nil input yields zero.
func CalculateBalance(transactions []domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range sortChronologically(transactions) {
		if txn.TransactionType == domain.Credit {
			balance = balance.Add(txn.Amount)
		} else {
			balance = balance.Sub(txn.Amount)
		}
	}
	return balance
}

// CalculateRunningBalances returns the cumulative balance immediately after
// each transaction, keyed by transaction ID, using the same chronological
// ordering as CalculateBalance.
func CalculateRunningBalances(transactions []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(transactions))
	balance := decimal.Zero
	for _, txn := range sortChronologically(transactions) {
		if txn.TransactionType == domain.Credit {
			balance = balance.Add(txn.Amount)
		} else {
			balance = balance.Sub(txn.Amount)
		}
		balances[txn.TransactionID] = balance
	}
	return balances
}

// IsOverBudget reports whether balance strictly exceeds budget.
func IsOverBudget(balance, budget decimal.Decimal) bool {
	return balance.GreaterThan(budget)
}

// GenerateBudgetWarning returns an advisory overage message when balance
// exceeds budget, or nil otherwise. Going over budget never blocks writes.
func GenerateBudgetWarning(balance, budget decimal.Decimal) *string {
	if !IsOverBudget(balance, budget) {
		return nil
	}
	overage := balance.Sub(budget)
	msg := fmt.Sprintf("balance %s exceeds budget %s by %s",
		balance.StringFixed(2), budget.StringFixed(2), overage.StringFixed(2))
	return &msg
}
