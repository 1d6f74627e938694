package ledger

import (
	"fmt"
	"sort"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tolerance is the policy constant for amount comparisons that may carry
// floating rounding from callers (split sums, remaining-obligation checks).
var Tolerance = decimal.RequireFromString("0.01")

// WithinTolerance reports whether a and b differ by at most Tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// Convert expresses an account-currency amount in the base currency.
func Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// SumSplits totals the split amounts of an entry.
func SumSplits(splits []domain.EntrySplit) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range splits {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// SortEntries orders entries for running-balance computation:
// transaction_date ascending with entry_id as the stable tiebreak for
// same-date entries (ids are UUIDv7, so id order is insertion order).
func SortEntries(entries []domain.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].TransactionDate.Equal(entries[j].TransactionDate) {
			return entries[i].TransactionDate.Before(entries[j].TransactionDate)
		}
		return entries[i].EntryID < entries[j].EntryID
	})
}

// ComputeRunningBalances folds the (already sorted) entries left to right,
// setting each entry's RunningBalance, and returns the final balance.
// The fold starts at zero and is a pure function of the entry set, so a
// recompute over the same ledger always yields the same sequence.
func ComputeRunningBalances(entries []domain.LedgerEntry) (decimal.Decimal, error) {
	running := decimal.Zero
	for i := range entries {
		signed, err := entries[i].SignedAmount()
		if err != nil {
			return decimal.Zero, fmt.Errorf("entry %s: %w", entries[i].EntryID, err)
		}
		running = running.Add(signed)
		entries[i].RunningBalance = running
	}
	return running, nil
}
