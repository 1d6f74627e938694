package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry. The sign of the entry's effect on
// the account balance is implied by the type; Amount itself is always
// positive in storage.
type EntryType string

const (
	EntryIncome             EntryType = "INCOME"
	EntryExpense            EntryType = "EXPENSE"
	EntryTransferOut        EntryType = "TRANSFER_OUT"
	EntryTransferIn         EntryType = "TRANSFER_IN"
	EntryInitial            EntryType = "INITIAL"
	EntryAdjustmentPositive EntryType = "ADJUSTMENT_POSITIVE"
	EntryAdjustmentNegative EntryType = "ADJUSTMENT_NEGATIVE"
)

// Sign returns +1 or -1 for the entry type's effect on the balance.
func (t EntryType) Sign() (int, error) {
	switch t {
	case EntryIncome, EntryTransferIn, EntryInitial, EntryAdjustmentPositive:
		return 1, nil
	case EntryExpense, EntryTransferOut, EntryAdjustmentNegative:
		return -1, nil
	default:
		return 0, fmt.Errorf("unknown entry type %q", t)
	}
}

// IsTransfer reports whether the type is one side of a transfer pair.
func (t EntryType) IsTransfer() bool {
	return t == EntryTransferOut || t == EntryTransferIn
}

// CategoryType returns the category type the entry type requires, or ""
// when the type does not take a category.
func (t EntryType) CategoryType() CategoryType {
	switch t {
	case EntryIncome:
		return CategoryIncome
	case EntryExpense:
		return CategoryExpense
	default:
		return ""
	}
}

// EntrySplit divides an income/expense entry's amount across categories.
// Splits are mutually exclusive with a single CategoryID on the entry.
type EntrySplit struct {
	SplitID    string          `json:"splitID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
}

// LedgerEntry is a single transaction row affecting exactly one account.
// Transfers use two reciprocally linked entries, TRANSFER_OUT on the source
// account and TRANSFER_IN on the destination.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`   // Primary Key (UUIDv7; id order is insertion order)
	AccountID       string          `json:"accountID"` // Owning account (Not Null)
	EntryType       EntryType       `json:"entryType"`
	Amount          decimal.Decimal `json:"amount"` // Positive magnitude in account currency
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	CategoryID      *string         `json:"categoryID"`      // Nil when split or when the type takes no category
	ConversionRate  decimal.Decimal `json:"conversionRate"`  // 1 when account currency is the base currency
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // Amount in the base currency as of TransactionDate
	RunningBalance  decimal.Decimal `json:"runningBalance"`  // Set only by the balance recalculator

	// Transfer bookkeeping. RelatedEntryID points at the counterpart entry;
	// DestinationAccountID is set on the TRANSFER_OUT side, FromAccountID on
	// the TRANSFER_IN side.
	RelatedEntryID       *string `json:"relatedEntryID"`
	DestinationAccountID *string `json:"destinationAccountID"`
	FromAccountID        *string `json:"fromAccountID"`

	Splits []EntrySplit `json:"splits,omitempty"`
	AuditFields
}

// SignedAmount applies the type-implied sign to the entry amount.
func (e LedgerEntry) SignedAmount() (decimal.Decimal, error) {
	sign, err := e.EntryType.Sign()
	if err != nil {
		return decimal.Zero, err
	}
	if sign < 0 {
		return e.Amount.Neg(), nil
	}
	return e.Amount, nil
}

// Validate checks the entry's structural invariants.
func (e LedgerEntry) Validate() error {
	if e.AccountID == "" {
		return fmt.Errorf("account ID is required")
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("entry amount must be positive")
	}
	if _, err := e.EntryType.Sign(); err != nil {
		return err
	}
	if e.CategoryID != nil && len(e.Splits) > 0 {
		return fmt.Errorf("category and splits are mutually exclusive")
	}
	if e.EntryType.IsTransfer() && len(e.Splits) > 0 {
		return fmt.Errorf("transfers cannot be split")
	}
	return nil
}
