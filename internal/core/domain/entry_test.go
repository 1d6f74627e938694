package domain_test

import (
	"testing"

	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntryType_Sign(t *testing.T) {
	tests := []struct {
		name      string
		entryType domain.EntryType
		want      int
		wantErr   bool
	}{
		{name: "income is positive", entryType: domain.EntryIncome, want: 1},
		{name: "transfer in is positive", entryType: domain.EntryTransferIn, want: 1},
		{name: "initial is positive", entryType: domain.EntryInitial, want: 1},
		{name: "positive adjustment is positive", entryType: domain.EntryAdjustmentPositive, want: 1},
		{name: "expense is negative", entryType: domain.EntryExpense, want: -1},
		{name: "transfer out is negative", entryType: domain.EntryTransferOut, want: -1},
		{name: "negative adjustment is negative", entryType: domain.EntryAdjustmentNegative, want: -1},
		{name: "unknown type errors", entryType: domain.EntryType("REFUND"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entryType.Sign()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(120.50)

	out := domain.LedgerEntry{EntryType: domain.EntryTransferOut, Amount: amount}
	signed, err := out.SignedAmount()
	assert.NoError(t, err)
	assert.True(t, signed.Equal(amount.Neg()))

	in := domain.LedgerEntry{EntryType: domain.EntryTransferIn, Amount: amount}
	signed, err = in.SignedAmount()
	assert.NoError(t, err)
	assert.True(t, signed.Equal(amount))
}

func TestLedgerEntry_Validate(t *testing.T) {
	categoryID := "cat-1"

	tests := []struct {
		name    string
		entry   domain.LedgerEntry
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid expense with category",
			entry: domain.LedgerEntry{
				AccountID:  "acc-1",
				EntryType:  domain.EntryExpense,
				Amount:     decimal.NewFromInt(10),
				CategoryID: &categoryID,
			},
		},
		{
			name: "valid income with splits",
			entry: domain.LedgerEntry{
				AccountID: "acc-1",
				EntryType: domain.EntryIncome,
				Amount:    decimal.NewFromInt(10),
				Splits: []domain.EntrySplit{
					{CategoryID: "cat-1", Amount: decimal.NewFromInt(4)},
					{CategoryID: "cat-2", Amount: decimal.NewFromInt(6)},
				},
			},
		},
		{
			name: "missing account",
			entry: domain.LedgerEntry{
				EntryType: domain.EntryIncome,
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "account ID is required",
		},
		{
			name: "zero amount",
			entry: domain.LedgerEntry{
				AccountID: "acc-1",
				EntryType: domain.EntryIncome,
				Amount:    decimal.Zero,
			},
			wantErr: true,
			errMsg:  "must be positive",
		},
		{
			name: "category and splits are exclusive",
			entry: domain.LedgerEntry{
				AccountID:  "acc-1",
				EntryType:  domain.EntryExpense,
				Amount:     decimal.NewFromInt(10),
				CategoryID: &categoryID,
				Splits:     []domain.EntrySplit{{CategoryID: "cat-2", Amount: decimal.NewFromInt(10)}},
			},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name: "split transfer rejected",
			entry: domain.LedgerEntry{
				AccountID: "acc-1",
				EntryType: domain.EntryTransferOut,
				Amount:    decimal.NewFromInt(10),
				Splits:    []domain.EntrySplit{{CategoryID: "cat-2", Amount: decimal.NewFromInt(10)}},
			},
			wantErr: true,
			errMsg:  "cannot be split",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusForPaid(t *testing.T) {
	total := decimal.NewFromInt(100)

	assert.Equal(t, domain.ObligationOpen, domain.StatusForPaid(decimal.Zero, total))
	assert.Equal(t, domain.ObligationPartial, domain.StatusForPaid(decimal.NewFromInt(70), total))
	assert.Equal(t, domain.ObligationPaid, domain.StatusForPaid(total, total))
	assert.Equal(t, domain.ObligationPaid, domain.StatusForPaid(decimal.NewFromInt(101), total))
}
