package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusWorkload is the tracked time and record count for one status.
type StatusWorkload struct {
	Hours       decimal.Decimal `json:"hours"`
	RecordCount int             `json:"recordCount"`
}

// DeveloperWorkload aggregates one developer's ledger entries for a single
// calendar day, keyed by trackable status.
type DeveloperWorkload struct {
	Developer        string                          `json:"developer"` // Username; "unassigned" when the record has no assignee
	ByStatus         map[RecordStatus]StatusWorkload `json:"byStatus"`
	TotalHours       decimal.Decimal                 `json:"totalHours"`
	TotalRecordCount int                             `json:"totalRecordCount"`
}

// ActivityInterval is one closed ledger interval with its record context,
// used for per-day drill-down views.
type ActivityInterval struct {
	EntryID   int64           `json:"entryID"`
	RecordID  int64           `json:"recordID"`
	Task      string          `json:"task"`
	Developer string          `json:"developer"`
	Status    RecordStatus    `json:"status"`
	StartedAt time.Time       `json:"startedAt"`
	EndedAt   time.Time       `json:"endedAt"`
	Hours     decimal.Decimal `json:"hours"`
}

// RecordActivities groups a day's intervals by record.
type RecordActivities struct {
	RecordID   int64              `json:"recordID"`
	Task       string             `json:"task"`
	Developer  string             `json:"developer"`
	Intervals  []ActivityInterval `json:"intervals"`
	TotalHours decimal.Decimal    `json:"totalHours"`
}

// DeveloperStats summarises one developer's records, optionally filtered by
// record creation date range: how many records they hold, how those records
// are spread across statuses, and the closed tracked time per status.
type DeveloperStats struct {
	Username        string                           `json:"username"`
	TotalRecords    int                              `json:"totalRecords"`
	RecordsByStatus map[RecordStatus]int             `json:"recordsByStatus"`
	HoursByStatus   map[RecordStatus]decimal.Decimal `json:"hoursByStatus"`
}

// StatusOverview is the global state of the board: record counts per status
// and total closed tracked time per trackable status.
type StatusOverview struct {
	StatusCounts  map[RecordStatus]int             `json:"statusCounts"`
	HoursByStatus map[RecordStatus]decimal.Decimal `json:"hoursByStatus"`
}
