package dto

import (
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionKind is the caller-facing transaction type. TRANSFER expands
// into a TRANSFER_OUT/TRANSFER_IN entry pair on the ledger.
type TransactionKind string

const (
	KindIncome             TransactionKind = "INCOME"
	KindExpense            TransactionKind = "EXPENSE"
	KindTransfer           TransactionKind = "TRANSFER"
	KindInitial            TransactionKind = "INITIAL"
	KindAdjustmentPositive TransactionKind = "ADJUSTMENT_POSITIVE"
	KindAdjustmentNegative TransactionKind = "ADJUSTMENT_NEGATIVE"
)

// SplitRequest divides a transaction amount across categories.
type SplitRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	AccountID       string          `json:"accountID" binding:"required"`
	Kind            TransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE TRANSFER INITIAL ADJUSTMENT_POSITIVE ADJUSTMENT_NEGATIVE"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	Description     string          `json:"description"`
	CategoryID      *string         `json:"categoryID"` // Income/expense only; exclusive with Splits
	Splits          []SplitRequest  `json:"splits"`

	// Transfer fields. ReceivedAmount supports differing send/receive
	// amounts for cross-currency transfers; nil means same as Amount.
	DestinationAccountID *string          `json:"destinationAccountID"`
	ReceivedAmount       *decimal.Decimal `json:"receivedAmount"`
}

// UpdateTransactionRequest defines the data allowed when updating a
// transaction. Pointers distinguish zero-value updates from omitted fields.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	ReceivedAmount  *decimal.Decimal `json:"receivedAmount"` // Transfer pairs only
	TransactionDate *time.Time       `json:"transactionDate"`
	Description     *string          `json:"description"`
	CategoryID      *string          `json:"categoryID"`
	Splits          []SplitRequest   `json:"splits"`

	// Transfer re-pointing.
	AccountID            *string `json:"accountID"`
	DestinationAccountID *string `json:"destinationAccountID"`
}

// SplitResponse is the API shape of an entry split.
type SplitResponse struct {
	SplitID    string          `json:"splitID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	EntryID              string          `json:"entryID"`
	AccountID            string          `json:"accountID"`
	EntryType            string          `json:"entryType"`
	Amount               decimal.Decimal `json:"amount"`
	TransactionDate      time.Time       `json:"transactionDate"`
	Description          string          `json:"description"`
	CategoryID           *string         `json:"categoryID,omitempty"`
	ConversionRate       decimal.Decimal `json:"conversionRate"`
	ConvertedAmount      decimal.Decimal `json:"convertedAmount"`
	RunningBalance       decimal.Decimal `json:"runningBalance"`
	RelatedEntryID       *string         `json:"relatedEntryID,omitempty"`
	DestinationAccountID *string         `json:"destinationAccountID,omitempty"`
	FromAccountID        *string         `json:"fromAccountID,omitempty"`
	Splits               []SplitResponse `json:"splits,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// ListTransactionsParams holds cursor pagination parameters for listing.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions plus the next cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.LedgerEntry to its API shape.
func ToTransactionResponse(e *domain.LedgerEntry) TransactionResponse {
	splits := make([]SplitResponse, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = SplitResponse{SplitID: s.SplitID, CategoryID: s.CategoryID, Amount: s.Amount}
	}
	if len(splits) == 0 {
		splits = nil
	}
	return TransactionResponse{
		EntryID:              e.EntryID,
		AccountID:            e.AccountID,
		EntryType:            string(e.EntryType),
		Amount:               e.Amount,
		TransactionDate:      e.TransactionDate,
		Description:          e.Description,
		CategoryID:           e.CategoryID,
		ConversionRate:       e.ConversionRate,
		ConvertedAmount:      e.ConvertedAmount,
		RunningBalance:       e.RunningBalance,
		RelatedEntryID:       e.RelatedEntryID,
		DestinationAccountID: e.DestinationAccountID,
		FromAccountID:        e.FromAccountID,
		Splits:               splits,
		CreatedAt:            e.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of entries to API shapes.
func ToTransactionResponses(entries []domain.LedgerEntry) []TransactionResponse {
	responses := make([]TransactionResponse, len(entries))
	for i := range entries {
		responses[i] = ToTransactionResponse(&entries[i])
	}
	return responses
}
