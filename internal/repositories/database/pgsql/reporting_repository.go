package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface.
//
// Ledger entries carry no developer of their own: they are joined to the
// record's current assignee at query time, so reassigning a record shifts its
// history to the new assignee. Documented source behavior, kept as is.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetDailyWorkloadData groups entries closed on day by current assignee and status.
func (r *reportingRepository) GetDailyWorkloadData(ctx context.Context, day time.Time, developer *string) ([]portsrepo.WorkloadRow, error) {
	query := `
		SELECT
			COALESCE(u.username, 'unassigned') AS developer,
			e.status,
			COALESCE(SUM(e.hours), 0) AS total_hours,
			array_agg(DISTINCT e.record_id) AS record_ids
		FROM time_entries e
		JOIN records r ON e.record_id = r.record_id
		LEFT JOIN users u ON r.assignee_user_id = u.user_id
		WHERE e.entry_date = $1
		  AND ($2::text IS NULL OR u.username = $2)
		GROUP BY COALESCE(u.username, 'unassigned'), e.status
		ORDER BY developer, e.status;
	`
	rows, err := r.Pool.Query(ctx, query, domain.DayOf(day), developer)
	if err != nil {
		return nil, fmt.Errorf("error querying daily workload data: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.WorkloadRow
	for rows.Next() {
		var row portsrepo.WorkloadRow
		var status string
		if err := rows.Scan(&row.Developer, &status, &row.Hours, &row.RecordIDs); err != nil {
			return nil, fmt.Errorf("error scanning workload row: %w", err)
		}
		row.Status = domain.RecordStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workload rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []portsrepo.WorkloadRow{}, nil
	}
	return result, nil
}

// GetDailyActivityData returns the day's closed intervals with record detail.
func (r *reportingRepository) GetDailyActivityData(ctx context.Context, day time.Time, developer *string) ([]portsrepo.ActivityRow, error) {
	query := `
		SELECT
			e.entry_id,
			e.record_id,
			r.task,
			COALESCE(u.username, 'unassigned') AS developer,
			e.status,
			e.started_at,
			e.ended_at,
			e.hours
		FROM time_entries e
		JOIN records r ON e.record_id = r.record_id
		LEFT JOIN users u ON r.assignee_user_id = u.user_id
		WHERE e.entry_date = $1
		  AND ($2::text IS NULL OR u.username = $2)
		ORDER BY e.record_id, e.started_at;
	`
	rows, err := r.Pool.Query(ctx, query, domain.DayOf(day), developer)
	if err != nil {
		return nil, fmt.Errorf("error querying daily activity data: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.ActivityRow
	for rows.Next() {
		var row portsrepo.ActivityRow
		var status string
		if err := rows.Scan(&row.EntryID, &row.RecordID, &row.Task, &row.Developer, &status, &row.StartedAt, &row.EndedAt, &row.Hours); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		row.Status = domain.RecordStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	if len(result) == 0 {
		return []portsrepo.ActivityRow{}, nil
	}
	return result, nil
}

// GetRecordCountsByStatus counts records per (assignee, status) within the
// optional record-creation date range.
func (r *reportingRepository) GetRecordCountsByStatus(ctx context.Context, from, to *time.Time) ([]portsrepo.StatusCountRow, error) {
	query := `
		SELECT
			COALESCE(u.username, 'unassigned') AS developer,
			r.status,
			COUNT(*) AS record_count
		FROM records r
		LEFT JOIN users u ON r.assignee_user_id = u.user_id
		WHERE ($1::timestamptz IS NULL OR r.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR r.created_at < $2)
		GROUP BY COALESCE(u.username, 'unassigned'), r.status
		ORDER BY developer, r.status;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying record counts by status: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.StatusCountRow
	for rows.Next() {
		var row portsrepo.StatusCountRow
		var status string
		if err := rows.Scan(&row.Developer, &status, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning status count row: %w", err)
		}
		row.Status = domain.RecordStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}

	if len(result) == 0 {
		return []portsrepo.StatusCountRow{}, nil
	}
	return result, nil
}

// GetClosedHoursByStatus sums ledger hours per (assignee, status) within the
// optional record-creation date range.
func (r *reportingRepository) GetClosedHoursByStatus(ctx context.Context, from, to *time.Time) ([]portsrepo.StatusHoursRow, error) {
	query := `
		SELECT
			COALESCE(u.username, 'unassigned') AS developer,
			e.status,
			COALESCE(SUM(e.hours), 0) AS total_hours
		FROM time_entries e
		JOIN records r ON e.record_id = r.record_id
		LEFT JOIN users u ON r.assignee_user_id = u.user_id
		WHERE ($1::timestamptz IS NULL OR r.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR r.created_at < $2)
		GROUP BY COALESCE(u.username, 'unassigned'), e.status
		ORDER BY developer, e.status;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying closed hours by status: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.StatusHoursRow
	for rows.Next() {
		var row portsrepo.StatusHoursRow
		var status string
		if err := rows.Scan(&row.Developer, &status, &row.Hours); err != nil {
			return nil, fmt.Errorf("error scanning status hours row: %w", err)
		}
		row.Status = domain.RecordStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status hours rows: %w", err)
	}

	if len(result) == 0 {
		return []portsrepo.StatusHoursRow{}, nil
	}
	return result, nil
}
