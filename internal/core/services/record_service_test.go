package services_test

import (
	"context"
	"testing"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portsrepo "github.com/editorialops/edit_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/core/services"
	"github.com/editorialops/edit_tracking_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.RecordSvcFacade
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewRecordService(suite.mockRecordRepo, suite.mockUserRepo)
}

func (suite *RecordServiceTestSuite) lead() domain.ActingUser {
	return domain.ActingUser{UserID: "lead-1", Role: domain.RoleLead}
}

func (suite *RecordServiceTestSuite) TestCreateRecord_StartsInBacklog() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		Task:   "Proofread chapter 3",
		BookID: "BK-1001",
	}

	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r *domain.Record) bool {
		return r.Task == req.Task && r.BookID == req.BookID &&
			r.Status == domain.StatusBacklog && r.OpenTimerCount() == 0 &&
			r.CreatedBy == "lead-1"
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, suite.lead())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBacklog, record.Status)
	suite.Nil(record.PublishedAt)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_DeveloperForbidden() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{Task: "t", BookID: "b"}

	record, err := suite.service.CreateRecord(ctx, req, domain.ActingUser{UserID: "dev-1", Role: domain.RoleDeveloper})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_UnknownAssignee() {
	ctx := context.Background()
	assignee := "ghost"
	req := dto.CreateRecordRequest{Task: "t", BookID: "b", AssigneeUserID: &assignee}

	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.CreateRecord(ctx, req, suite.lead())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_PatchesFields() {
	ctx := context.Background()
	existing := &domain.Record{RecordID: 7, Task: "Old task", BookID: "BK-1", Status: domain.StatusTodo}
	newTask := "New task"
	pages := 120
	req := dto.UpdateRecordRequest{Task: &newTask, PageCount: &pages}

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockRecordRepo.On("UpdateRecordFields", ctx, mock.MatchedBy(func(r domain.Record) bool {
		return r.RecordID == 7 && r.Task == newTask && r.PageCount != nil && *r.PageCount == 120 &&
			r.Status == domain.StatusTodo && r.LastUpdatedBy == "lead-1"
	})).Return(nil).Once()

	record, err := suite.service.UpdateRecord(ctx, 7, req, suite.lead())

	suite.Require().NoError(err)
	suite.Equal(newTask, record.Task)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NoFields() {
	ctx := context.Background()
	existing := &domain.Record{RecordID: 7, Task: "Task", BookID: "BK-1", Status: domain.StatusTodo}

	suite.mockRecordRepo.On("FindRecordByID", ctx, int64(7)).Return(existing, nil).Once()

	record, err := suite.service.UpdateRecord(ctx, 7, dto.UpdateRecordRequest{}, suite.lead())

	suite.Require().NoError(err)
	suite.Equal(existing, record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "UpdateRecordFields", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestListRecords_MapsFilter() {
	ctx := context.Background()
	developer := "alice"
	status := string(domain.StatusInProgress)
	params := dto.ListRecordsParams{Developer: &developer, Status: &status, Limit: 10, Offset: 5}

	expectedStatus := domain.StatusInProgress
	suite.mockRecordRepo.On("ListRecords", ctx, portsrepo.ListRecordsFilter{
		AssigneeUsername: &developer,
		Status:           &expectedStatus,
		Limit:            10,
		Offset:           5,
	}).Return([]domain.Record{{RecordID: 1}}, nil).Once()

	records, err := suite.service.ListRecords(ctx, params)

	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
