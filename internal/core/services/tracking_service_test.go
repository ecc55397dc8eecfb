package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID int64) (*domain.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, filter portsrepo.ListRecordsFilter) ([]domain.Record, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record *domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecordFields(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) ApplyTransition(ctx context.Context, recordID int64, newStatus domain.RecordStatus, now time.Time, actorUserID string) (*domain.Record, domain.TransitionResult, error) {
	args := m.Called(ctx, recordID, newStatus, now, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.TransitionResult), args.Error(2)
	}
	return args.Get(0).(*domain.Record), args.Get(1).(domain.TransitionResult), args.Error(2)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, recordID int64) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindEntriesByRecordID(ctx context.Context, recordID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SumHoursByRecordID(ctx context.Context, recordID int64) (map[domain.RecordStatus]decimal.Decimal, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.RecordStatus]decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type TrackingServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.TrackingSvcFacade
}

func (suite *TrackingServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewTrackingService(suite.mockRecordRepo, suite.mockLedgerRepo, services.NewTransitionAuthorizer())
}

func (suite *TrackingServiceTestSuite) admin() domain.ActingUser {
	return domain.ActingUser{UserID: "admin-1", Role: domain.RoleAdmin}
}

func (suite *TrackingServiceTestSuite) developer(userID string) domain.ActingUser {
	return domain.ActingUser{UserID: userID, Role: domain.RoleDeveloper}
}

func (suite *TrackingServiceTestSuite) recordInStatus(recordID int64, status domain.RecordStatus, assignee *string) *domain.Record {
	return &domain.Record{
		RecordID:       recordID,
		Task:           "Layout pass",
		BookID:         "BK-7",
		AssigneeUserID: assignee,
		Status:         status,
	}
}

// --- ChangeStatus ---

func (suite *TrackingServiceTestSuite) TestChangeStatus_Success() {
	ctx := context.Background()
	current := suite.recordInStatus(7, domain.StatusTodo, nil)
	updated := suite.recordInStatus(7, domain.StatusInProgress, nil)
	closed := &domain.LedgerEntry{RecordID: 7, Status: domain.StatusTodo, Hours: decimal.RequireFromString("2.00")}

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()
	suite.mockRecordRepo.On("ApplyTransition", ctx, int64(7), domain.StatusInProgress, mock.AnythingOfType("time.Time"), "admin-1").
		Return(updated, domain.TransitionResult{Closed: closed}, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusInProgress, suite.admin())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, record.Status)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_UnknownStatus() {
	ctx := context.Background()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.RecordStatus("SHIPPED"), suite.admin())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "FindRecordByID", mock.Anything, mock.Anything)
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_RecordNotFound() {
	ctx := context.Background()

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.ChangeStatus(ctx, 404, domain.StatusTodo, suite.admin())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(record)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_NoOpConflict() {
	ctx := context.Background()
	current := suite.recordInStatus(7, domain.StatusInProgress, nil)

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusInProgress, suite.admin())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_DeveloperNotAssignee() {
	ctx := context.Background()
	assignee := "dev-2"
	current := suite.recordInStatus(7, domain.StatusTodo, &assignee)

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusInProgress, suite.developer("dev-1"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_DeveloperForbiddenStatus() {
	ctx := context.Background()
	assignee := "dev-1"
	current := suite.recordInStatus(7, domain.StatusInProgress, &assignee)

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusBacklog, suite.developer("dev-1"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(record)
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_DeveloperAssigneeAllowed() {
	ctx := context.Background()
	assignee := "dev-1"
	current := suite.recordInStatus(7, domain.StatusTodo, &assignee)
	updated := suite.recordInStatus(7, domain.StatusInProgress, &assignee)

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()
	suite.mockRecordRepo.On("ApplyTransition", ctx, int64(7), domain.StatusInProgress, mock.AnythingOfType("time.Time"), "dev-1").
		Return(updated, domain.TransitionResult{}, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusInProgress, suite.developer("dev-1"))

	suite.Require().NoError(err)
	suite.Equal(domain.StatusInProgress, record.Status)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestChangeStatus_TimerMissingStillSucceeds() {
	ctx := context.Background()
	current := suite.recordInStatus(7, domain.StatusInReview, nil)
	updated := suite.recordInStatus(7, domain.StatusOnHold, nil)

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(current, nil).Once()
	suite.mockRecordRepo.On("ApplyTransition", ctx, int64(7), domain.StatusOnHold, mock.AnythingOfType("time.Time"), "admin-1").
		Return(updated, domain.TransitionResult{TimerMissing: true}, nil).Once()

	record, err := suite.service.ChangeStatus(ctx, 7, domain.StatusOnHold, suite.admin())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusOnHold, record.Status)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

// --- GetRecordTimes ---

func (suite *TrackingServiceTestSuite) TestGetRecordTimes_CombinesClosedAndLive() {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	openedAt := now.Add(-time.Hour)

	record := suite.recordInStatus(7, domain.StatusInProgress, nil)
	record.InProgressStartedAt = &openedAt

	closed := map[domain.RecordStatus]decimal.Decimal{
		domain.StatusTodo:       decimal.RequireFromString("2.00"),
		domain.StatusInProgress: decimal.RequireFromString("0.50"),
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(record, nil).Once()
	suite.mockLedgerRepo.On("SumHoursByRecordID", ctx, int64(7)).Return(closed, nil).Once()

	times, err := suite.service.GetRecordTimes(ctx, 7, now)

	suite.Require().NoError(err)
	suite.Equal(int64(7), times.RecordID)
	suite.Equal(domain.StatusInProgress, times.Status)
	suite.Equal("2.00", times.PerStatus[string(domain.StatusTodo)])
	suite.Equal("1.50", times.PerStatus[string(domain.StatusInProgress)])
	suite.Equal("0.00", times.PerStatus[string(domain.StatusInReview)])
	suite.Equal("0.00", times.PerStatus[string(domain.StatusReviewFailed)])
	suite.Equal("3.50", times.Total)
	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestGetRecordTimes_RecordNotFound() {
	ctx := context.Background()

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	times, err := suite.service.GetRecordTimes(ctx, 404, time.Now().UTC())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(times)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SumHoursByRecordID", mock.Anything, mock.Anything)
}

// --- GetRecordEntries ---

func (suite *TrackingServiceTestSuite) TestGetRecordEntries_Success() {
	ctx := context.Background()
	record := suite.recordInStatus(7, domain.StatusOnHold, nil)
	entries := []domain.LedgerEntry{
		{EntryID: 1, RecordID: 7, Status: domain.StatusTodo, Hours: decimal.RequireFromString("2.00")},
		{EntryID: 2, RecordID: 7, Status: domain.StatusInProgress, Hours: decimal.RequireFromString("3.00")},
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(record, nil).Once()
	suite.mockLedgerRepo.On("FindEntriesByRecordID", ctx, int64(7)).Return(entries, nil).Once()

	got, err := suite.service.GetRecordEntries(ctx, 7)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- DeleteRecord ---

func (suite *TrackingServiceTestSuite) TestDeleteRecord_DeveloperForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteRecord(ctx, 7, suite.developer("dev-1"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "DeleteRecord", mock.Anything, mock.Anything)
}

func (suite *TrackingServiceTestSuite) TestDeleteRecord_LeadSuccess() {
	ctx := context.Background()

	suite.mockRecordRepo.On("DeleteRecord", ctx, int64(7)).Return(nil).Once()

	err := suite.service.DeleteRecord(ctx, 7, domain.ActingUser{UserID: "lead-1", Role: domain.RoleLead})

	suite.Require().NoError(err)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *TrackingServiceTestSuite) TestDeleteRecord_NotFound() {
	ctx := context.Background()

	suite.mockRecordRepo.On("DeleteRecord", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRecord(ctx, 404, suite.admin())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func TestTrackingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingServiceTestSuite))
}
