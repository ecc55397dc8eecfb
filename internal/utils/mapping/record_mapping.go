package mapping

import (
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/editorialops/edit_tracking_app/internal/models"
)

// ToModelRecord converts a domain Record to a model Record
func ToModelRecord(d domain.Record) models.Record {
	return models.Record{
		RecordID:              d.RecordID,
		Task:                  d.Task,
		BookID:                d.BookID,
		AssigneeUserID:        d.AssigneeUserID,
		PageCount:             d.PageCount,
		OCR:                   d.OCR,
		TargetDate:            d.TargetDate,
		Status:                models.RecordStatus(d.Status),
		TodoStartedAt:         d.TodoStartedAt,
		InProgressStartedAt:   d.InProgressStartedAt,
		InReviewStartedAt:     d.InReviewStartedAt,
		ReviewFailedStartedAt: d.ReviewFailedStartedAt,
		PublishedAt:           d.PublishedAt,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecord converts a model Record to a domain Record
func ToDomainRecord(m models.Record) domain.Record {
	return domain.Record{
		RecordID:              m.RecordID,
		Task:                  m.Task,
		BookID:                m.BookID,
		AssigneeUserID:        m.AssigneeUserID,
		PageCount:             m.PageCount,
		OCR:                   m.OCR,
		TargetDate:            m.TargetDate,
		Status:                domain.RecordStatus(m.Status),
		TodoStartedAt:         m.TodoStartedAt,
		InProgressStartedAt:   m.InProgressStartedAt,
		InReviewStartedAt:     m.InReviewStartedAt,
		ReviewFailedStartedAt: m.ReviewFailedStartedAt,
		PublishedAt:           m.PublishedAt,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecordSlice converts a slice of model Records to a slice of domain Records
func ToDomainRecordSlice(ms []models.Record) []domain.Record {
	ds := make([]domain.Record, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}
