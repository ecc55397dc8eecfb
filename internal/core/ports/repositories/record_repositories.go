package repositories

import (
	"context"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
)

// RecordReader defines read operations for record data.
type RecordReader interface {
	// FindRecordByID retrieves a specific record by its ID.
	FindRecordByID(ctx context.Context, recordID int64) (*domain.Record, error)

	// ListRecords retrieves records, optionally filtered by assignee username
	// and/or status, with limit/offset paging.
	ListRecords(ctx context.Context, filter ListRecordsFilter) ([]domain.Record, error)
}

// ListRecordsFilter narrows a record listing.
type ListRecordsFilter struct {
	AssigneeUsername *string
	Status           *domain.RecordStatus
	Limit            int
	Offset           int
}

// RecordWriter defines write operations for record data.
type RecordWriter interface {
	// SaveRecord persists a new record and fills in its generated ID.
	SaveRecord(ctx context.Context, record *domain.Record) error

	// UpdateRecordFields updates the non-status fields of an existing record.
	// Status and open-timer fields never flow through this method.
	UpdateRecordFields(ctx context.Context, record domain.Record) error
}

// RecordTransitioner applies a status transition atomically: it locks the
// record row, re-reads its open-timer state, runs the status clock, appends
// the closed ledger entry (when one is produced) and updates the record, all
// in a single database transaction. Transitions on different records do not
// block each other.
type RecordTransitioner interface {
	// ApplyTransition moves the record into newStatus at instant now.
	// Returns the updated record and the clock result. The transition is
	// all-or-nothing: on error no state has changed.
	ApplyTransition(ctx context.Context, recordID int64, newStatus domain.RecordStatus, now time.Time, actorUserID string) (*domain.Record, domain.TransitionResult, error)
}

// RecordLifecycleManager defines destructive record operations.
type RecordLifecycleManager interface {
	// DeleteRecord removes the record and all its ledger entries in one
	// transaction; entries never outlive their record.
	DeleteRecord(ctx context.Context, recordID int64) error
}

// RecordRepositoryFacade combines all record-related repository interfaces.
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
	RecordTransitioner
	RecordLifecycleManager
}
