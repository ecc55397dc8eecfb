package pgsql

import (
	"context"
	"fmt"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	"github.com/editorialops/edit_tracking_app/internal/models"
	"github.com/editorialops/edit_tracking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the append-only time ledger.
// Appends happen inside the record repository's transition transaction; this
// repository only reads.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// FindEntriesByRecordID retrieves all closed intervals for a record, ordered by start time.
func (r *PgxLedgerRepository) FindEntriesByRecordID(ctx context.Context, recordID int64) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, record_id, status, started_at, ended_at, hours, entry_date, created_at, created_by
		FROM time_entries
		WHERE record_id = $1
		ORDER BY started_at;
	`
	rows, err := r.Pool.Query(ctx, query, recordID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query ledger entries for record %d", recordID), err)
	}
	defer rows.Close()

	entries := []models.TimeEntry{}
	for rows.Next() {
		m, err := scanTimeEntryRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// SumHoursByRecordID returns the closed-interval totals for a record keyed by status.
func (r *PgxLedgerRepository) SumHoursByRecordID(ctx context.Context, recordID int64) (map[domain.RecordStatus]decimal.Decimal, error) {
	query := `
		SELECT status, COALESCE(SUM(hours), 0)
		FROM time_entries
		WHERE record_id = $1
		GROUP BY status;
	`
	rows, err := r.Pool.Query(ctx, query, recordID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to sum ledger hours for record %d", recordID), err)
	}
	defer rows.Close()

	totals := make(map[domain.RecordStatus]decimal.Decimal)
	for rows.Next() {
		var status string
		var hours decimal.Decimal
		if err := rows.Scan(&status, &hours); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger total row", err)
		}
		totals[domain.RecordStatus(status)] = hours
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger total rows", err)
	}

	return totals, nil
}

// scanTimeEntryRow scans a single time_entries row.
func scanTimeEntryRow(row pgx.Row) (*models.TimeEntry, error) {
	var m models.TimeEntry
	err := row.Scan(
		&m.EntryID,
		&m.RecordID,
		&m.Status,
		&m.StartedAt,
		&m.EndedAt,
		&m.Hours,
		&m.EntryDate,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
