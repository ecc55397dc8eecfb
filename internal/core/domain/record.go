package domain

import "time"

// RecordStatus is the lifecycle state of an editorial record.
type RecordStatus string

const (
	StatusBacklog      RecordStatus = "BACKLOG"
	StatusTodo         RecordStatus = "TODO"
	StatusInProgress   RecordStatus = "IN_PROGRESS"
	StatusInReview     RecordStatus = "IN_REVIEW"
	StatusReviewFailed RecordStatus = "REVIEW_FAILED" // "Review failed-In Progress"
	StatusOnHold       RecordStatus = "ON_HOLD"
	StatusPublished    RecordStatus = "PUBLISHED"
)

// TrackableStatuses are the statuses for which elapsed time is measured
// via open/close timers, in lifecycle order.
var TrackableStatuses = []RecordStatus{
	StatusTodo,
	StatusInProgress,
	StatusInReview,
	StatusReviewFailed,
}

// IsValid reports whether the status is one of the fixed enumerated values.
func (s RecordStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusInReview,
		StatusReviewFailed, StatusOnHold, StatusPublished:
		return true
	}
	return false
}

// IsTrackable reports whether time spent in this status is measured.
func (s RecordStatus) IsTrackable() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInReview, StatusReviewFailed:
		return true
	}
	return false
}

// Record represents a unit of editorial work moving through the status lifecycle.
// Invariant: at most one of the four open-timer fields is non-nil at any time,
// and the open one corresponds to Status whenever Status is trackable.
type Record struct {
	RecordID       int64        `json:"recordID"` // Primary Key, immutable numeric id
	Task           string       `json:"task"`
	BookID         string       `json:"bookID"`
	AssigneeUserID *string      `json:"assigneeUserID,omitempty"` // FK -> User.userID
	PageCount      *int         `json:"pageCount,omitempty"`
	OCR            bool         `json:"ocr"`
	TargetDate     *time.Time   `json:"targetDate,omitempty"`
	Status         RecordStatus `json:"status"`

	// Open-timer fields, one per trackable status.
	TodoStartedAt         *time.Time `json:"todoStartedAt,omitempty"`
	InProgressStartedAt   *time.Time `json:"inProgressStartedAt,omitempty"`
	InReviewStartedAt     *time.Time `json:"inReviewStartedAt,omitempty"`
	ReviewFailedStartedAt *time.Time `json:"reviewFailedStartedAt,omitempty"`

	PublishedAt *time.Time `json:"publishedAt,omitempty"` // Set once, on first transition into PUBLISHED
	AuditFields
}

// OpenTimer returns the opened-at timestamp for the given trackable status,
// or nil when no timer is open for it.
func (r *Record) OpenTimer(status RecordStatus) *time.Time {
	switch status {
	case StatusTodo:
		return r.TodoStartedAt
	case StatusInProgress:
		return r.InProgressStartedAt
	case StatusInReview:
		return r.InReviewStartedAt
	case StatusReviewFailed:
		return r.ReviewFailedStartedAt
	}
	return nil
}

// setOpenTimer sets the opened-at timestamp for a trackable status.
// Callers must clear other timers first to preserve the single-timer invariant.
func (r *Record) setOpenTimer(status RecordStatus, t time.Time) {
	switch status {
	case StatusTodo:
		r.TodoStartedAt = &t
	case StatusInProgress:
		r.InProgressStartedAt = &t
	case StatusInReview:
		r.InReviewStartedAt = &t
	case StatusReviewFailed:
		r.ReviewFailedStartedAt = &t
	}
}

// clearOpenTimers resets all four open-timer fields.
func (r *Record) clearOpenTimers() {
	r.TodoStartedAt = nil
	r.InProgressStartedAt = nil
	r.InReviewStartedAt = nil
	r.ReviewFailedStartedAt = nil
}

// OpenTimerCount returns how many open-timer fields are set. Anything other
// than 0 or 1 is a data-integrity violation.
func (r *Record) OpenTimerCount() int {
	count := 0
	for _, s := range TrackableStatuses {
		if r.OpenTimer(s) != nil {
			count++
		}
	}
	return count
}
