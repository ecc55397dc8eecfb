package repositories

import (
	"context"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkloadRow is one aggregated (developer, status) bucket for a day.
// RecordIDs holds the distinct records behind the bucket so callers can
// count a record once per developer even when it closed intervals in
// several statuses that day.
type WorkloadRow struct {
	Developer string
	Status    domain.RecordStatus
	Hours     decimal.Decimal
	RecordIDs []int64
}

// ActivityRow is one ledger interval joined with its record context.
type ActivityRow struct {
	EntryID   int64
	RecordID  int64
	Task      string
	Developer string
	Status    domain.RecordStatus
	StartedAt time.Time
	EndedAt   time.Time
	Hours     decimal.Decimal
}

// StatusCountRow is a (developer, status, record count) bucket.
type StatusCountRow struct {
	Developer string
	Status    domain.RecordStatus
	Count     int
}

// StatusHoursRow is a (developer, status, closed hours) bucket.
type StatusHoursRow struct {
	Developer string
	Status    domain.RecordStatus
	Hours     decimal.Decimal
}

// ReportingRepository provides the aggregation queries behind the workload
// and statistics reports. Ledger entries are attributed to whoever is
// currently assigned to the record, not who held it when the interval closed.
type ReportingRepository interface {
	// GetDailyWorkloadData groups ledger entries closed on day by the
	// record's current assignee and status.
	GetDailyWorkloadData(ctx context.Context, day time.Time, developer *string) ([]WorkloadRow, error)

	// GetDailyActivityData returns the day's closed intervals with record
	// detail, ordered by record then start time.
	GetDailyActivityData(ctx context.Context, day time.Time, developer *string) ([]ActivityRow, error)

	// GetRecordCountsByStatus counts records per (assignee, status),
	// optionally restricted by record creation date range.
	GetRecordCountsByStatus(ctx context.Context, from, to *time.Time) ([]StatusCountRow, error)

	// GetClosedHoursByStatus sums ledger hours per (assignee, status),
	// optionally restricted by record creation date range.
	GetClosedHoursByStatus(ctx context.Context, from, to *time.Time) ([]StatusHoursRow, error)
}
