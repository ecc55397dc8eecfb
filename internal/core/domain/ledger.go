package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is an immutable closed interval of time a record spent in one
// trackable status. Entries are written only when a timer closes and are never
// updated; they are deleted only when the owning record is purged.
type LedgerEntry struct {
	EntryID   int64           `json:"entryID"`  // Primary Key
	RecordID  int64           `json:"recordID"` // FK -> Record.recordID
	Status    RecordStatus    `json:"status"`   // Always a trackable status
	StartedAt time.Time       `json:"startedAt"`
	EndedAt   time.Time       `json:"endedAt"`
	Hours     decimal.Decimal `json:"hours"`     // EndedAt - StartedAt in hours, 2 decimal places
	EntryDate time.Time       `json:"entryDate"` // Calendar day the interval was closed
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"` // UserID reference
}
