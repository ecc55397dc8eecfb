package mapping

import (
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/editorialops/edit_tracking_app/internal/models"
)

// ToDomainLedgerEntry converts a model TimeEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.TimeEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:   m.EntryID,
		RecordID:  m.RecordID,
		Status:    domain.RecordStatus(m.Status),
		StartedAt: m.StartedAt,
		EndedAt:   m.EndedAt,
		Hours:     m.Hours,
		EntryDate: m.EntryDate,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model TimeEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.TimeEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
