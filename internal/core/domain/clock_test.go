package domain_test

import (
	"testing"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newBacklogRecord() *domain.Record {
	return &domain.Record{
		RecordID: 42,
		Task:     "Proofread chapter 3",
		BookID:   "BK-1001",
		Status:   domain.StatusBacklog,
	}
}

func TestApplyTransition_Lifecycle(t *testing.T) {
	rec := newBacklogRecord()

	// BACKLOG -> TODO opens the TODO timer and closes nothing.
	result, err := domain.ApplyTransition(rec, domain.StatusTodo, baseTime)
	require.NoError(t, err)
	assert.Nil(t, result.Closed)
	assert.False(t, result.TimerMissing)
	assert.Equal(t, domain.StatusTodo, rec.Status)
	require.NotNil(t, rec.TodoStartedAt)
	assert.True(t, rec.TodoStartedAt.Equal(baseTime))
	assert.Equal(t, 1, rec.OpenTimerCount())

	// TODO -> IN_PROGRESS two hours later closes a 2.00h TODO entry.
	t1 := baseTime.Add(2 * time.Hour)
	result, err = domain.ApplyTransition(rec, domain.StatusInProgress, t1)
	require.NoError(t, err)
	require.NotNil(t, result.Closed)
	assert.Equal(t, domain.StatusTodo, result.Closed.Status)
	assert.Equal(t, "2.00", result.Closed.Hours.StringFixed(2))
	assert.True(t, result.Closed.StartedAt.Equal(baseTime))
	assert.True(t, result.Closed.EndedAt.Equal(t1))
	assert.True(t, result.Closed.EntryDate.Equal(domain.DayOf(t1)))
	assert.Nil(t, rec.TodoStartedAt)
	require.NotNil(t, rec.InProgressStartedAt)
	assert.Equal(t, 1, rec.OpenTimerCount())

	// IN_PROGRESS -> PUBLISHED three hours later closes a 3.00h entry,
	// stamps publishedAt and leaves no timer open.
	t2 := t1.Add(3 * time.Hour)
	result, err = domain.ApplyTransition(rec, domain.StatusPublished, t2)
	require.NoError(t, err)
	require.NotNil(t, result.Closed)
	assert.Equal(t, domain.StatusInProgress, result.Closed.Status)
	assert.Equal(t, "3.00", result.Closed.Hours.StringFixed(2))
	assert.Equal(t, domain.StatusPublished, rec.Status)
	require.NotNil(t, rec.PublishedAt)
	assert.True(t, rec.PublishedAt.Equal(t2))
	assert.Equal(t, 0, rec.OpenTimerCount())
}

func TestApplyTransition_NoOp(t *testing.T) {
	rec := newBacklogRecord()

	_, err := domain.ApplyTransition(rec, domain.StatusBacklog, baseTime)
	assert.ErrorIs(t, err, domain.ErrNoTransition)
	assert.Equal(t, domain.StatusBacklog, rec.Status)
	assert.Equal(t, 0, rec.OpenTimerCount())
}

func TestApplyTransition_UnknownStatus(t *testing.T) {
	rec := newBacklogRecord()

	_, err := domain.ApplyTransition(rec, domain.RecordStatus("SHIPPED"), baseTime)
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.Equal(t, domain.StatusBacklog, rec.Status)
}

func TestApplyTransition_MissingTimer(t *testing.T) {
	// Trackable status without an open timer: the transition succeeds but
	// no interval is fabricated.
	rec := newBacklogRecord()
	rec.Status = domain.StatusInProgress

	result, err := domain.ApplyTransition(rec, domain.StatusOnHold, baseTime)
	require.NoError(t, err)
	assert.Nil(t, result.Closed)
	assert.True(t, result.TimerMissing)
	assert.Equal(t, domain.StatusOnHold, rec.Status)
	assert.Equal(t, 0, rec.OpenTimerCount())
}

func TestApplyTransition_NonTrackableToNonTrackable(t *testing.T) {
	rec := newBacklogRecord()
	rec.Status = domain.StatusOnHold

	result, err := domain.ApplyTransition(rec, domain.StatusBacklog, baseTime)
	require.NoError(t, err)
	assert.Nil(t, result.Closed)
	assert.False(t, result.TimerMissing)
	assert.Equal(t, domain.StatusBacklog, rec.Status)
}

func TestApplyTransition_ZeroDurationInterval(t *testing.T) {
	rec := newBacklogRecord()

	_, err := domain.ApplyTransition(rec, domain.StatusTodo, baseTime)
	require.NoError(t, err)

	// Closing at the same instant yields a 0.00h entry, never a negative one.
	result, err := domain.ApplyTransition(rec, domain.StatusInProgress, baseTime)
	require.NoError(t, err)
	require.NotNil(t, result.Closed)
	assert.Equal(t, "0.00", result.Closed.Hours.StringFixed(2))
}

func TestApplyTransition_PublishedAtSetOnce(t *testing.T) {
	rec := newBacklogRecord()

	_, err := domain.ApplyTransition(rec, domain.StatusPublished, baseTime)
	require.NoError(t, err)
	require.NotNil(t, rec.PublishedAt)
	first := *rec.PublishedAt

	// Reopen and republish later: the original timestamp survives.
	_, err = domain.ApplyTransition(rec, domain.StatusTodo, baseTime.Add(time.Hour))
	require.NoError(t, err)
	_, err = domain.ApplyTransition(rec, domain.StatusPublished, baseTime.Add(2*time.Hour))
	require.NoError(t, err)

	require.NotNil(t, rec.PublishedAt)
	assert.True(t, rec.PublishedAt.Equal(first))
}

func TestApplyTransition_RoundTripKeepsSingleTimer(t *testing.T) {
	rec := newBacklogRecord()
	steps := []domain.RecordStatus{
		domain.StatusTodo,
		domain.StatusInProgress,
		domain.StatusInReview,
		domain.StatusReviewFailed,
		domain.StatusInReview,
		domain.StatusOnHold,
		domain.StatusInProgress,
		domain.StatusPublished,
	}

	now := baseTime
	for _, next := range steps {
		now = now.Add(30 * time.Minute)
		_, err := domain.ApplyTransition(rec, next, now)
		require.NoError(t, err)
		if next.IsTrackable() {
			assert.Equal(t, 1, rec.OpenTimerCount())
			require.NotNil(t, rec.OpenTimer(next))
			assert.True(t, rec.OpenTimer(next).Equal(now))
		} else {
			assert.Equal(t, 0, rec.OpenTimerCount())
		}
	}
}

func TestHoursBetween(t *testing.T) {
	assert.Equal(t, "1.50", domain.HoursBetween(baseTime, baseTime.Add(90*time.Minute)).StringFixed(2))
	assert.Equal(t, "0.03", domain.HoursBetween(baseTime, baseTime.Add(100*time.Second)).StringFixed(2))
	assert.True(t, domain.HoursBetween(baseTime, baseTime).IsZero())
	assert.True(t, domain.HoursBetween(baseTime.Add(time.Hour), baseTime).IsZero())
}

func TestDayOf(t *testing.T) {
	late := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), domain.DayOf(late))

	// Non-UTC timestamps truncate to their UTC day.
	offset := time.FixedZone("UTC+5", 5*3600)
	early := time.Date(2025, 3, 11, 2, 0, 0, 0, offset)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), domain.DayOf(early))
}

func TestLiveHours(t *testing.T) {
	rec := newBacklogRecord()
	_, err := domain.ApplyTransition(rec, domain.StatusInProgress, baseTime)
	require.NoError(t, err)

	closed := decimal.RequireFromString("1.50")

	// Current status with open timer: closed total plus elapsed time.
	live := domain.LiveHours(rec, domain.StatusInProgress, closed, baseTime.Add(time.Hour))
	assert.Equal(t, "2.50", live.StringFixed(2))

	// A later now never yields a smaller total.
	later := domain.LiveHours(rec, domain.StatusInProgress, closed, baseTime.Add(2*time.Hour))
	assert.True(t, later.GreaterThanOrEqual(live))

	// Other statuses report only their closed total.
	assert.Equal(t, "1.50", domain.LiveHours(rec, domain.StatusTodo, closed, baseTime.Add(time.Hour)).StringFixed(2))
}
