package services

import (
	"context"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/editorialops/edit_tracking_app/internal/dto"
)

// TransitionAuthorizerSvc gates which role may move a record into which
// status. Pure predicate: no I/O, no side effects. Callers must check it
// before invoking the status clock.
type TransitionAuthorizerSvc interface {
	IsAllowed(role domain.UserRole, current, next domain.RecordStatus, isAssignee bool) bool
}

// StatusChangerSvc moves records through the status lifecycle.
type StatusChangerSvc interface {
	// ChangeStatus validates the transition against the authorizer and runs
	// the status clock atomically. Returns apperrors.ErrForbidden when the
	// acting user may not perform the transition, apperrors.ErrNotFound when
	// the record does not exist and apperrors.ErrConflict for a no-op
	// transition to the current status.
	ChangeStatus(ctx context.Context, recordID int64, newStatus domain.RecordStatus, actor domain.ActingUser) (*domain.Record, error)
}

// RecordTimesReaderSvc answers "how long has this record spent in each status".
type RecordTimesReaderSvc interface {
	// GetRecordTimes returns per-status live totals (closed ledger time plus
	// the open timer's elapsed time, if any) as of now.
	GetRecordTimes(ctx context.Context, recordID int64, now time.Time) (*dto.RecordTimesResponse, error)

	// GetRecordEntries returns the record's closed intervals ordered by start time.
	GetRecordEntries(ctx context.Context, recordID int64) ([]domain.LedgerEntry, error)
}

// RecordPurgerSvc destroys records and their tracked history.
type RecordPurgerSvc interface {
	// DeleteRecord removes the record and all its ledger entries atomically.
	// Restricted to admin and lead roles.
	DeleteRecord(ctx context.Context, recordID int64, actor domain.ActingUser) error
}

// TrackingSvcFacade combines the time-tracking service interfaces.
type TrackingSvcFacade interface {
	StatusChangerSvc
	RecordTimesReaderSvc
	RecordPurgerSvc
}
