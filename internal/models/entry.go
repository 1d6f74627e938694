package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of a ledger entry row.
type LedgerEntry struct {
	EntryID              string          `db:"entry_id"`
	AccountID            string          `db:"account_id"`
	EntryType            string          `db:"entry_type"`
	Amount               decimal.Decimal `db:"amount"`
	TransactionDate      time.Time       `db:"transaction_date"`
	Description          string          `db:"description"`
	CategoryID           *string         `db:"category_id"`
	ConversionRate       decimal.Decimal `db:"conversion_rate"`
	ConvertedAmount      decimal.Decimal `db:"converted_amount"`
	RunningBalance       decimal.Decimal `db:"running_balance"`
	RelatedEntryID       *string         `db:"related_entry_id"`
	DestinationAccountID *string         `db:"destination_account_id"`
	FromAccountID        *string         `db:"from_account_id"`
	AuditFields
}

// EntrySplit is the database representation of an entry split row.
type EntrySplit struct {
	SplitID    string          `db:"split_id"`
	EntryID    string          `db:"entry_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
}
