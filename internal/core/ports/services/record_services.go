package services

import (
	"context"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/editorialops/edit_tracking_app/internal/dto"
)

// RecordReaderSvc defines read operations for records.
type RecordReaderSvc interface {
	// GetRecordByID retrieves a record by ID.
	GetRecordByID(ctx context.Context, recordID int64) (*domain.Record, error)

	// ListRecords retrieves records matching the given parameters.
	ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, error)
}

// RecordWriterSvc defines write operations for records. Status never flows
// through these methods; it is owned by the status clock.
type RecordWriterSvc interface {
	// CreateRecord creates a new record in BACKLOG with no open timer.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, actor domain.ActingUser) (*domain.Record, error)

	// UpdateRecord applies a typed field patch to an existing record.
	UpdateRecord(ctx context.Context, recordID int64, req dto.UpdateRecordRequest, actor domain.ActingUser) (*domain.Record, error)
}

// RecordSvcFacade combines record CRUD interfaces.
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
