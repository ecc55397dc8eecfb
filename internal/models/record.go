package models

import "time"

// RecordStatus mirrors domain.RecordStatus at the persistence layer.
type RecordStatus string

// Record represents a row of the records table.
type Record struct {
	RecordID       int64        `db:"record_id"`
	Task           string       `db:"task"`
	BookID         string       `db:"book_id"`
	AssigneeUserID *string      `db:"assignee_user_id"`
	PageCount      *int         `db:"page_count"`
	OCR            bool         `db:"ocr"`
	TargetDate     *time.Time   `db:"target_date"`
	Status         RecordStatus `db:"status"`

	TodoStartedAt         *time.Time `db:"todo_started_at"`
	InProgressStartedAt   *time.Time `db:"in_progress_started_at"`
	InReviewStartedAt     *time.Time `db:"in_review_started_at"`
	ReviewFailedStartedAt *time.Time `db:"review_failed_started_at"`

	PublishedAt *time.Time `db:"published_at"`
	AuditFields
}
