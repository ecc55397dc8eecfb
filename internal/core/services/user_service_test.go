package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/editorialops/edit_tracking_app/internal/apperrors"
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	portssvc "github.com/editorialops/edit_tracking_app/internal/core/ports/services"
	"github.com/editorialops/edit_tracking_app/internal/core/services"
	"github.com/editorialops/edit_tracking_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, role *domain.UserRole, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, role, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice",
		Role:     domain.RoleDeveloper,
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username && u.Name == req.Name && u.Role == req.Role &&
			u.UserID != "" && u.CreatedBy == creatorUserID && u.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Username, user.Username)
	suite.Equal(domain.RoleDeveloper, user.Role)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidRole() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "bob",
		Name:     "Bob",
		Role:     domain.UserRole("intern"),
	}

	user, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice",
		Role:     domain.RoleDeveloper,
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_RoleFilter() {
	ctx := context.Background()
	role := domain.RoleDeveloper
	expected := []domain.User{
		{UserID: "u1", Username: "alice", Role: domain.RoleDeveloper},
		{UserID: "u2", Username: "bob", Role: domain.RoleDeveloper},
	}

	suite.mockRepo.On("FindUsers", ctx, &role, 20, 0).Return(expected, nil).Once()

	users, err := suite.service.ListUsers(ctx, &role, 20, 0)

	suite.Require().NoError(err)
	suite.Len(users, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesRole() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Username: "alice", Name: "Alice", Role: domain.RoleDeveloper}
	newRole := domain.RoleLead
	req := dto.UpdateUserRequest{Role: &newRole}

	suite.mockRepo.On("FindUserByID", ctx, "u1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "u1" && u.Role == domain.RoleLead && u.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, "u1", req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleLead, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NoFields() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Username: "alice", Name: "Alice", Role: domain.RoleDeveloper}

	suite.mockRepo.On("FindUserByID", ctx, "u1").Return(existing, nil).Once()

	user, err := suite.service.UpdateUser(ctx, "u1", dto.UpdateUserRequest{}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()

	suite.mockRepo.On("MarkUserDeleted", ctx, "u1", mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "u1", "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
