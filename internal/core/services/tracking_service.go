package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/dto"
	"github.com/shopspring/decimal"
)

// trackingService owns the status clock: it moves records through the
// lifecycle, closing and opening per-status timers, and answers live
// per-status time questions from the ledger plus open-timer state.
type trackingService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
	authorizer portssvc.TransitionAuthorizerSvc
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(recordRepo portsrepo.RecordRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade, authorizer portssvc.TransitionAuthorizerSvc) portssvc.TrackingSvcFacade {
	return &trackingService{
		recordRepo: recordRepo,
		ledgerRepo: ledgerRepo,
		authorizer: authorizer,
	}
}

// Ensure trackingService implements portssvc.TrackingSvcFacade
var _ portssvc.TrackingSvcFacade = (*trackingService)(nil)

// ChangeStatus validates the requested transition and runs the status clock.
// The close of the previous timer, the ledger append and the status update
// commit atomically; on any error the record is unchanged.
func (s *trackingService) ChangeStatus(ctx context.Context, recordID int64, newStatus domain.RecordStatus, actor domain.ActingUser) (*domain.Record, error) {
	logger := s.GetLogger(ctx)

	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, newStatus)
	}

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find record for status change", slog.Int64("record_id", recordID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	if record.Status == newStatus {
		return nil, fmt.Errorf("%w: record %d is already %s", apperrors.ErrConflict, recordID, newStatus)
	}

	isAssignee := record.AssigneeUserID != nil && *record.AssigneeUserID == actor.UserID
	if !s.authorizer.IsAllowed(actor.Role, record.Status, newStatus, isAssignee) {
		s.LogWarn(ctx, "Status change denied",
			slog.Int64("record_id", recordID),
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)),
			slog.String("from", string(record.Status)),
			slog.String("to", string(newStatus)))
		return nil, fmt.Errorf("%w: role %s may not move record %d to %s", apperrors.ErrForbidden, actor.Role, recordID, newStatus)
	}

	// One wall-clock read per transition; the repository re-reads the
	// open-timer state under a row lock and reruns the clock, so two
	// concurrent transitions can never double-close the same timer.
	now := time.Now().UTC()
	updated, result, err := s.recordRepo.ApplyTransition(ctx, recordID, newStatus, now, actor.UserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply status transition", slog.Int64("record_id", recordID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	if result.TimerMissing {
		// Recoverable inconsistency: the previous status was trackable but
		// carried no open timer. That stretch is simply untracked.
		s.LogWarn(ctx, "Open timer missing on trackable status, interval skipped",
			slog.Int64("record_id", recordID),
			slog.String("status", string(record.Status)))
	}

	logArgs := []any{
		slog.Int64("record_id", recordID),
		slog.String("from", string(record.Status)),
		slog.String("to", string(newStatus)),
	}
	if result.Closed != nil {
		logArgs = append(logArgs, slog.String("closed_hours", result.Closed.Hours.StringFixed(2)))
	}
	logger.Info("Record status changed", logArgs...)

	return updated, nil
}

// GetRecordTimes returns the live per-status totals for a record as of now:
// closed ledger time per trackable status plus the open timer's elapsed time
// when that status is current.
func (s *trackingService) GetRecordTimes(ctx context.Context, recordID int64, now time.Time) (*dto.RecordTimesResponse, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	closed, err := s.ledgerRepo.SumHoursByRecordID(ctx, recordID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger hours", slog.Int64("record_id", recordID))
		return nil, fmt.Errorf("failed to compute record times: %w", err)
	}

	perStatus := make(map[string]string, len(domain.TrackableStatuses))
	total := decimal.Zero
	for _, status := range domain.TrackableStatuses {
		live := domain.LiveHours(record, status, closed[status], now)
		perStatus[string(status)] = live.StringFixed(2)
		total = total.Add(live)
	}

	return &dto.RecordTimesResponse{
		RecordID:  record.RecordID,
		Status:    record.Status,
		PerStatus: perStatus,
		Total:     total.StringFixed(2),
		AsOf:      now,
	}, nil
}

// GetRecordEntries returns the record's closed intervals ordered by start time.
func (s *trackingService) GetRecordEntries(ctx context.Context, recordID int64) ([]domain.LedgerEntry, error) {
	if _, err := s.recordRepo.FindRecordByID(ctx, recordID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.FindEntriesByRecordID(ctx, recordID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger entries", slog.Int64("record_id", recordID))
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}
	return entries, nil
}

// DeleteRecord purges the record's ledger entries and the record itself in
// one transaction. Developers cannot delete records.
func (s *trackingService) DeleteRecord(ctx context.Context, recordID int64, actor domain.ActingUser) error {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleLead {
		return fmt.Errorf("%w: role %s may not delete records", apperrors.ErrForbidden, actor.Role)
	}

	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete record", slog.Int64("record_id", recordID))
		}
		return err
	}

	s.LogInfo(ctx, "Record deleted", slog.Int64("record_id", recordID), slog.String("deleted_by", actor.UserID))
	return nil
}
