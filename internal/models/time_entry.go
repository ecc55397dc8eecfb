package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry represents a row of the time_entries ledger table.
// Rows are append-only; they are removed only when the owning record is purged.
type TimeEntry struct {
	EntryID   int64           `db:"entry_id"`
	RecordID  int64           `db:"record_id"`
	Status    RecordStatus    `db:"status"`
	StartedAt time.Time       `db:"started_at"`
	EndedAt   time.Time       `db:"ended_at"`
	Hours     decimal.Decimal `db:"hours"`
	EntryDate time.Time       `db:"entry_date"`
	CreatedAt time.Time       `db:"created_at"`
	CreatedBy string          `db:"created_by"`
}
