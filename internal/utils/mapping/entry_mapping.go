package mapping

import (
	"github.com/fintrackio/fintrack_backend/internal/core/domain"
	"github.com/fintrackio/fintrack_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// Splits are mapped separately since they live in their own table.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:              d.EntryID,
		AccountID:            d.AccountID,
		EntryType:            string(d.EntryType),
		Amount:               d.Amount,
		TransactionDate:      d.TransactionDate,
		Description:          d.Description,
		CategoryID:           d.CategoryID,
		ConversionRate:       d.ConversionRate,
		ConvertedAmount:      d.ConvertedAmount,
		RunningBalance:       d.RunningBalance,
		RelatedEntryID:       d.RelatedEntryID,
		DestinationAccountID: d.DestinationAccountID,
		FromAccountID:        d.FromAccountID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:              m.EntryID,
		AccountID:            m.AccountID,
		EntryType:            domain.EntryType(m.EntryType),
		Amount:               m.Amount,
		TransactionDate:      m.TransactionDate,
		Description:          m.Description,
		CategoryID:           m.CategoryID,
		ConversionRate:       m.ConversionRate,
		ConvertedAmount:      m.ConvertedAmount,
		RunningBalance:       m.RunningBalance,
		RelatedEntryID:       m.RelatedEntryID,
		DestinationAccountID: m.DestinationAccountID,
		FromAccountID:        m.FromAccountID,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToModelEntrySplit converts a domain EntrySplit to a model EntrySplit
func ToModelEntrySplit(entryID string, d domain.EntrySplit) models.EntrySplit {
	return models.EntrySplit{
		SplitID:    d.SplitID,
		EntryID:    entryID,
		CategoryID: d.CategoryID,
		Amount:     d.Amount,
	}
}

// ToDomainEntrySplit converts a model EntrySplit to a domain EntrySplit
func ToDomainEntrySplit(m models.EntrySplit) domain.EntrySplit {
	return domain.EntrySplit{
		SplitID:    m.SplitID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
	}
}
