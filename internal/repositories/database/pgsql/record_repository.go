package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	"github.com/editorialops/edit_tracking_app/internal/models"
	"github.com/editorialops/edit_tracking_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `record_id, task, book_id, assignee_user_id, page_count, ocr, target_date, status,
	todo_started_at, in_progress_started_at, in_review_started_at, review_failed_started_at,
	published_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for record data.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryFacade
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

// SaveRecord inserts a new record and fills in the generated record_id.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record *domain.Record) error {
	m := mapping.ToModelRecord(*record)
	query := `
		INSERT INTO records (task, book_id, assignee_user_id, page_count, ocr, target_date, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING record_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Task,
		m.BookID,
		m.AssigneeUserID,
		m.PageCount,
		m.OCR,
		m.TargetDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&record.RecordID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert record", err)
	}
	return nil
}

// FindRecordByID retrieves a record by its ID.
func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID int64) (*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE record_id = $1;`
	m, err := scanRecordRow(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find record %d", recordID), err)
	}
	record := mapping.ToDomainRecord(*m)
	return &record, nil
}

// ListRecords retrieves records matching the filter, newest first.
func (r *PgxRecordRepository) ListRecords(ctx context.Context, filter portsrepo.ListRecordsFilter) ([]domain.Record, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + qualifyRecordColumns("r") + `
		FROM records r
		LEFT JOIN users u ON r.assignee_user_id = u.user_id
		WHERE ($1::text IS NULL OR u.username = $1)
		  AND ($2::text IS NULL OR r.status = $2)
		ORDER BY r.record_id DESC
		LIMIT $3 OFFSET $4;
	`
	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}
	rows, err := r.Pool.Query(ctx, query, filter.AssigneeUsername, status, limit, filter.Offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query records", err)
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		m, err := scanRecordRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan record row", err)
		}
		records = append(records, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating record rows", err)
	}

	return mapping.ToDomainRecordSlice(records), nil
}

// UpdateRecordFields updates the non-status fields of an existing record.
func (r *PgxRecordRepository) UpdateRecordFields(ctx context.Context, record domain.Record) error {
	m := mapping.ToModelRecord(record)
	query := `
		UPDATE records
		SET task = $2, book_id = $3, assignee_user_id = $4, page_count = $5, ocr = $6,
		    target_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE record_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.Task,
		m.BookID,
		m.AssigneeUserID,
		m.PageCount,
		m.OCR,
		m.TargetDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update record %d", m.RecordID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyTransition runs the status clock for a record inside a database
// transaction. The record row is locked with FOR UPDATE so that two
// concurrent transitions cannot both observe the same open timer; transitions
// on different records do not block each other. The ledger append and the
// status/timer update commit together or not at all.
func (r *PgxRecordRepository) ApplyTransition(ctx context.Context, recordID int64, newStatus domain.RecordStatus, now time.Time, actorUserID string) (*domain.Record, domain.TransitionResult, error) {
	var result domain.TransitionResult

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, result, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + recordColumns + ` FROM records WHERE record_id = $1 FOR UPDATE;`
	m, err := scanRecordRow(tx.QueryRow(ctx, lockQuery, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, result, apperrors.ErrNotFound
		}
		return nil, result, apperrors.NewAppError(500, fmt.Sprintf("failed to lock record %d", recordID), err)
	}

	record := mapping.ToDomainRecord(*m)
	result, err = domain.ApplyTransition(&record, newStatus, now)
	if err != nil {
		if errors.Is(err, domain.ErrNoTransition) {
			return nil, result, fmt.Errorf("%w: record %d is already %s", apperrors.ErrConflict, recordID, newStatus)
		}
		return nil, result, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if result.Closed != nil {
		entry := result.Closed
		entry.CreatedBy = actorUserID
		entryQuery := `
			INSERT INTO time_entries (record_id, status, started_at, ended_at, hours, entry_date, created_at, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING entry_id;
		`
		if err := tx.QueryRow(ctx, entryQuery,
			entry.RecordID,
			string(entry.Status),
			entry.StartedAt,
			entry.EndedAt,
			entry.Hours,
			entry.EntryDate,
			entry.CreatedAt,
			entry.CreatedBy,
		).Scan(&entry.EntryID); err != nil {
			return nil, result, apperrors.NewAppError(500, fmt.Sprintf("failed to append ledger entry for record %d", recordID), err)
		}
	}

	record.LastUpdatedAt = now
	record.LastUpdatedBy = actorUserID
	updated := mapping.ToModelRecord(record)
	updateQuery := `
		UPDATE records
		SET status = $2, todo_started_at = $3, in_progress_started_at = $4, in_review_started_at = $5,
		    review_failed_started_at = $6, published_at = $7, last_updated_at = $8, last_updated_by = $9
		WHERE record_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		updated.RecordID,
		updated.Status,
		updated.TodoStartedAt,
		updated.InProgressStartedAt,
		updated.InReviewStartedAt,
		updated.ReviewFailedStartedAt,
		updated.PublishedAt,
		updated.LastUpdatedAt,
		updated.LastUpdatedBy,
	); err != nil {
		return nil, result, apperrors.NewAppError(500, fmt.Sprintf("failed to update record %d status", recordID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, result, err
	}

	return &record, result, nil
}

// DeleteRecord removes the record and its ledger entries in one transaction.
// Entries are purged first so they never outlive their record.
func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, recordID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM time_entries WHERE record_id = $1;`, recordID); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to purge ledger entries for record %d", recordID), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM records WHERE record_id = $1;`, recordID)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete record %d", recordID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// scanRecordRow scans a single records row in recordColumns order.
func scanRecordRow(row pgx.Row) (*models.Record, error) {
	var m models.Record
	err := row.Scan(
		&m.RecordID,
		&m.Task,
		&m.BookID,
		&m.AssigneeUserID,
		&m.PageCount,
		&m.OCR,
		&m.TargetDate,
		&m.Status,
		&m.TodoStartedAt,
		&m.InProgressStartedAt,
		&m.InReviewStartedAt,
		&m.ReviewFailedStartedAt,
		&m.PublishedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// qualifyRecordColumns prefixes each record column with a table alias.
func qualifyRecordColumns(alias string) string {
	return alias + `.record_id, ` + alias + `.task, ` + alias + `.book_id, ` + alias + `.assignee_user_id, ` +
		alias + `.page_count, ` + alias + `.ocr, ` + alias + `.target_date, ` + alias + `.status, ` +
		alias + `.todo_started_at, ` + alias + `.in_progress_started_at, ` + alias + `.in_review_started_at, ` +
		alias + `.review_failed_started_at, ` + alias + `.published_at, ` + alias + `.created_at, ` +
		alias + `.created_by, ` + alias + `.last_updated_at, ` + alias + `.last_updated_by`
}
