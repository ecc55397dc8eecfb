package services

import (
	"context"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
)

// ReportingSvcFacade rolls ledger entries into per-developer and per-day
// summaries. Empty result sets yield zero-valued summaries, never errors.
type ReportingSvcFacade interface {
	// GetDailyWorkload groups day's closed intervals by the record's current
	// assignee: per-status hours and record counts plus grand totals.
	GetDailyWorkload(ctx context.Context, day time.Time, developer *string) ([]domain.DeveloperWorkload, error)

	// GetDailyActivities returns the same intervals grouped by record with
	// full interval detail, for drill-down views.
	GetDailyActivities(ctx context.Context, day time.Time, developer *string) ([]domain.RecordActivities, error)

	// GetDeveloperStats summarises each developer's records and closed
	// tracked time, optionally filtered by record creation date range.
	GetDeveloperStats(ctx context.Context, from, to *time.Time) ([]domain.DeveloperStats, error)

	// GetStatusOverview returns board-wide status counts and tracked hours.
	GetStatusOverview(ctx context.Context, from, to *time.Time) (*domain.StatusOverview, error)
}
