package mocks

import (
	"context"
	"time"

	"github.com/Reactman/wakanda/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserServiceMock is a testify/mock for services.UserService.
// We use this to test the HTTP handlers without real business logic.
type UserServiceMock struct{ mock.Mock }

func userOrNil(args mock.Arguments) (*models.User, error) {
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return userOrNil(m.Called(req))
}

func (m *UserServiceMock) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	args := m.Called(req, jwtSecret, exp)
	return args.String(0), args.Error(1)
}

func (m *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return userOrNil(m.Called(id))
}

func (m *UserServiceMock) CreateUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return userOrNil(m.Called(req))
}

func (m *UserServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return userOrNil(m.Called(id))
}

func (m *UserServiceMock) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	return userOrNil(m.Called(id, req))
}

func (m *UserServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *UserServiceMock) ListUsers(ctx context.Context, page, limit int) (*models.Page[models.User], error) {
	args := m.Called(page, limit)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[models.User]), args.Error(1)
	}
	return nil, args.Error(1)
}
