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
)

// recordService provides record CRUD. Status is deliberately outside its
// reach; every status change goes through the tracking service.
type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
}

// NewRecordService creates a new record service.
func NewRecordService(recordRepo portsrepo.RecordRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordService{
		recordRepo: recordRepo,
		userRepo:   userRepo,
	}
}

// Ensure recordService implements portssvc.RecordSvcFacade
var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// CreateRecord creates a new record in BACKLOG with no open timer.
func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, actor domain.ActingUser) (*domain.Record, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleLead {
		return nil, fmt.Errorf("%w: role %s may not create records", apperrors.ErrForbidden, actor.Role)
	}

	if err := s.validateAssignee(ctx, req.AssigneeUserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := domain.Record{
		Task:           req.Task,
		BookID:         req.BookID,
		AssigneeUserID: req.AssigneeUserID,
		PageCount:      req.PageCount,
		OCR:            req.OCR,
		TargetDate:     req.TargetDate,
		Status:         domain.StatusBacklog,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, &record); err != nil {
		s.LogError(ctx, err, "Failed to save record")
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.LogInfo(ctx, "Record created", slog.Int64("record_id", record.RecordID), slog.String("created_by", actor.UserID))
	return &record, nil
}

// GetRecordByID retrieves a record by ID.
func (s *recordService) GetRecordByID(ctx context.Context, recordID int64) (*domain.Record, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record", slog.Int64("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

// ListRecords retrieves records matching the given parameters.
func (s *recordService) ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.Record, error) {
	filter := portsrepo.ListRecordsFilter{
		AssigneeUsername: params.Developer,
		Limit:            params.Limit,
		Offset:           params.Offset,
	}
	if params.Status != nil {
		status := domain.RecordStatus(*params.Status)
		filter.Status = &status
	}

	records, err := s.recordRepo.ListRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, fmt.Errorf("failed to retrieve records: %w", err)
	}
	return records, nil
}

// UpdateRecord applies a typed field patch to an existing record.
func (s *recordService) UpdateRecord(ctx context.Context, recordID int64, req dto.UpdateRecordRequest, actor domain.ActingUser) (*domain.Record, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleLead {
		return nil, fmt.Errorf("%w: role %s may not edit records", apperrors.ErrForbidden, actor.Role)
	}

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Task != nil {
		record.Task = *req.Task
		updated = true
	}
	if req.BookID != nil {
		record.BookID = *req.BookID
		updated = true
	}
	if req.AssigneeUserID != nil {
		if err := s.validateAssignee(ctx, req.AssigneeUserID); err != nil {
			return nil, err
		}
		record.AssigneeUserID = req.AssigneeUserID
		updated = true
	}
	if req.PageCount != nil {
		record.PageCount = req.PageCount
		updated = true
	}
	if req.OCR != nil {
		record.OCR = *req.OCR
		updated = true
	}
	if req.TargetDate != nil {
		record.TargetDate = req.TargetDate
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for record update", slog.Int64("record_id", recordID))
		return record, nil
	}

	record.LastUpdatedAt = time.Now().UTC()
	record.LastUpdatedBy = actor.UserID

	if err := s.recordRepo.UpdateRecordFields(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update record fields", slog.Int64("record_id", recordID))
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	s.LogInfo(ctx, "Record updated", slog.Int64("record_id", recordID), slog.String("updated_by", actor.UserID))
	return record, nil
}

// validateAssignee checks that a non-nil assignee references an existing user.
func (s *recordService) validateAssignee(ctx context.Context, assigneeUserID *string) error {
	if assigneeUserID == nil {
		return nil
	}
	if _, err := s.userRepo.FindUserByID(ctx, *assigneeUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: assignee %s does not exist", apperrors.ErrValidation, *assigneeUserID)
		}
		return fmt.Errorf("failed to validate assignee: %w", err)
	}
	return nil
}
