package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/core/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "meera", Password: "s3cret!pass", Name: "Meera"}

	var savedHash string
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			savedHash = args.Get(2).(string)
		}).
		Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("meera", user.Username)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(savedHash), []byte("s3cret!pass")))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "meera", Password: "s3cret!pass", Name: "Meera"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).
		Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!pass"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	auth := &domain.UserAuth{
		User:         domain.User{UserID: "u-1", Username: "meera", Name: "Meera"},
		PasswordHash: string(hash),
	}
	suite.mockRepo.On("FindUserAuthByUsername", ctx, "meera").Return(auth, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "meera", "s3cret!pass")

	suite.Require().NoError(err)
	suite.Equal("u-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!pass"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	auth := &domain.UserAuth{
		User:         domain.User{UserID: "u-1", Username: "meera"},
		PasswordHash: string(hash),
	}
	suite.mockRepo.On("FindUserAuthByUsername", ctx, "meera").Return(auth, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "meera", "wrong")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserIsUnauthorized() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserAuthByUsername", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OnlySelf() {
	ctx := context.Background()

	user, err := suite.service.UpdateUser(ctx, "u-1", dto.UpdateUserRequest{}, "u-2")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_OnlySelf() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, "u-1", "u-2")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrUnauthorized))
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
