package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoTransition is returned when the requested status equals the current one.
	ErrNoTransition = errors.New("record is already in the requested status")
	// ErrUnknownStatus is returned for a status outside the fixed enumeration.
	ErrUnknownStatus = errors.New("unknown record status")
)

// TransitionResult describes what ApplyTransition did to the record.
type TransitionResult struct {
	// Closed is the ledger entry produced by closing the previous status's
	// open timer, or nil when nothing was closed.
	Closed *LedgerEntry
	// TimerMissing is set when the previous status was trackable but its
	// open-timer field was nil. The stretch is treated as time untracked;
	// callers should log a warning, never fail the transition.
	TimerMissing bool
}

// ApplyTransition moves the record into newStatus at instant now, closing the
// current status's open timer (if any) and opening a timer for newStatus when
// it is trackable. The same now is used for both the close and the open step
// so the two can never disagree.
//
// The function only mutates the in-memory record; persisting the mutated
// record together with the returned ledger entry atomically is the caller's
// responsibility.
func ApplyTransition(rec *Record, newStatus RecordStatus, now time.Time) (TransitionResult, error) {
	var result TransitionResult

	if !newStatus.IsValid() {
		return result, ErrUnknownStatus
	}
	if rec.Status == newStatus {
		return result, ErrNoTransition
	}

	if rec.Status.IsTrackable() {
		if openedAt := rec.OpenTimer(rec.Status); openedAt != nil {
			result.Closed = &LedgerEntry{
				RecordID:  rec.RecordID,
				Status:    rec.Status,
				StartedAt: *openedAt,
				EndedAt:   now,
				Hours:     HoursBetween(*openedAt, now),
				EntryDate: DayOf(now),
				CreatedAt: now,
			}
		} else {
			// Clock skew, crash recovery or a manual data edit left the
			// timer unset. No interval is fabricated.
			result.TimerMissing = true
		}
	}

	rec.clearOpenTimers()
	if newStatus.IsTrackable() {
		rec.setOpenTimer(newStatus, now)
	}
	if newStatus == StatusPublished && rec.PublishedAt == nil {
		rec.PublishedAt = &now
	}
	rec.Status = newStatus

	return result, nil
}

// HoursBetween returns end-start in hours rounded to two decimal places.
// A non-positive interval yields 0.00 rather than a negative duration.
func HoursBetween(start, end time.Time) decimal.Decimal {
	if !end.After(start) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(end.Sub(start).Hours()).Round(2)
}

// DayOf truncates a timestamp to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LiveHours returns the live total for a record and status: the closed total
// from the ledger plus, when status is the record's current status with an
// open timer, the time elapsed since the timer opened. Pure function of its
// arguments; calling it with a later now never decreases the result while the
// timer stays open.
func LiveHours(rec *Record, status RecordStatus, closedTotal decimal.Decimal, now time.Time) decimal.Decimal {
	if rec.Status != status {
		return closedTotal
	}
	openedAt := rec.OpenTimer(status)
	if openedAt == nil {
		return closedTotal
	}
	return closedTotal.Add(HoursBetween(*openedAt, now))
}
