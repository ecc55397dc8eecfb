package dto

import (
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
)

// TimeEntryResponse is the API representation of one closed ledger interval.
// Hours are decimal strings with two decimal places.
type TimeEntryResponse struct {
	EntryID   int64               `json:"entryID"`
	RecordID  int64               `json:"recordID"`
	Status    domain.RecordStatus `json:"status"`
	StartedAt time.Time           `json:"startedAt"`
	EndedAt   time.Time           `json:"endedAt"`
	Hours     string              `json:"hours"`
	EntryDate string              `json:"entryDate"`
}

// ToTimeEntryResponse converts a domain.LedgerEntry to its API representation.
func ToTimeEntryResponse(e *domain.LedgerEntry) TimeEntryResponse {
	return TimeEntryResponse{
		EntryID:   e.EntryID,
		RecordID:  e.RecordID,
		Status:    e.Status,
		StartedAt: e.StartedAt,
		EndedAt:   e.EndedAt,
		Hours:     e.Hours.StringFixed(2),
		EntryDate: e.EntryDate.Format("2006-01-02"),
	}
}

// RecordEntriesResponse wraps a record's closed intervals.
type RecordEntriesResponse struct {
	RecordID int64               `json:"recordID"`
	Entries  []TimeEntryResponse `json:"entries"`
}

// ToRecordEntriesResponse converts a record's ledger entries.
func ToRecordEntriesResponse(recordID int64, entries []domain.LedgerEntry) RecordEntriesResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToTimeEntryResponse(&entries[i])
	}
	return RecordEntriesResponse{RecordID: recordID, Entries: responses}
}
