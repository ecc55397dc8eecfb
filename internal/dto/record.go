package dto

import (
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
)

// CreateRecordRequest defines the data needed to create a record.
// New records always start in BACKLOG with no open timer.
type CreateRecordRequest struct {
	Task           string     `json:"task" binding:"required"`
	BookID         string     `json:"bookID" binding:"required"`
	AssigneeUserID *string    `json:"assigneeUserID"`
	PageCount      *int       `json:"pageCount" binding:"omitempty,gt=0"`
	OCR            bool       `json:"ocr"`
	TargetDate     *time.Time `json:"targetDate"`
}

// UpdateRecordRequest defines the field patch allowed on a record.
// Pointers differentiate omitted fields from zero-value fields. Status is
// deliberately absent: it only changes through the status-change endpoint.
type UpdateRecordRequest struct {
	Task           *string    `json:"task"`
	BookID         *string    `json:"bookID"`
	AssigneeUserID *string    `json:"assigneeUserID"`
	PageCount      *int       `json:"pageCount" binding:"omitempty,gt=0"`
	OCR            *bool      `json:"ocr"`
	TargetDate     *time.Time `json:"targetDate"`
}

// ChangeStatusRequest asks to move a record into a new status.
type ChangeStatusRequest struct {
	Status domain.RecordStatus `json:"status" binding:"required,recordstatus"`
}

// ListRecordsParams defines query parameters for listing records.
type ListRecordsParams struct {
	Developer *string `form:"developer"`
	Status    *string `form:"status" binding:"omitempty,recordstatus"`
	Limit     int     `form:"limit,default=20"`
	Offset    int     `form:"offset,default=0"`
}

// RecordResponse is the API representation of a record.
type RecordResponse struct {
	RecordID       int64               `json:"recordID"`
	Task           string              `json:"task"`
	BookID         string              `json:"bookID"`
	AssigneeUserID *string             `json:"assigneeUserID,omitempty"`
	PageCount      *int                `json:"pageCount,omitempty"`
	OCR            bool                `json:"ocr"`
	TargetDate     *time.Time          `json:"targetDate,omitempty"`
	Status         domain.RecordStatus `json:"status"`
	PublishedAt    *time.Time          `json:"publishedAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastUpdatedAt  time.Time           `json:"lastUpdatedAt"`
}

// ToRecordResponse converts a domain.Record to its API representation.
func ToRecordResponse(r *domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:       r.RecordID,
		Task:           r.Task,
		BookID:         r.BookID,
		AssigneeUserID: r.AssigneeUserID,
		PageCount:      r.PageCount,
		OCR:            r.OCR,
		TargetDate:     r.TargetDate,
		Status:         r.Status,
		PublishedAt:    r.PublishedAt,
		CreatedAt:      r.CreatedAt,
		LastUpdatedAt:  r.LastUpdatedAt,
	}
}

// ToRecordResponses converts a slice of domain records.
func ToRecordResponses(records []domain.Record) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return responses
}

// RecordTimesResponse reports the live per-status totals for a record.
// Hours are decimal strings with two decimal places.
type RecordTimesResponse struct {
	RecordID  int64               `json:"recordID"`
	Status    domain.RecordStatus `json:"status"`
	PerStatus map[string]string   `json:"perStatus"` // status -> hours
	Total     string              `json:"total"`
	AsOf      time.Time           `json:"asOf"`
}
