package mocks

import (
	"context"

	"github.com/Reactman/wakanda/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// RepositoryMock is a testify/mock for repositories.BaseRepository.
// Method names are passed explicitly since generic method names are
// not reliable through runtime caller lookup.
type RepositoryMock[M any, ID comparable] struct{ mock.Mock }

func (m *RepositoryMock[M, ID]) Save(ctx context.Context, e *M) error {
	return m.MethodCalled("Save", e).Error(0)
}

func (m *RepositoryMock[M, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	args := m.MethodCalled("ExistsByID", id)
	return args.Bool(0), args.Error(1)
}

func (m *RepositoryMock[M, ID]) DeleteByID(ctx context.Context, id ID) error {
	return m.MethodCalled("DeleteByID", id).Error(0)
}

func (m *RepositoryMock[M, ID]) Delete(ctx context.Context, e *M) error {
	return m.MethodCalled("Delete", e).Error(0)
}

func (m *RepositoryMock[M, ID]) FindByID(ctx context.Context, id ID) (*M, error) {
	args := m.MethodCalled("FindByID", id)
	if v := args.Get(0); v != nil {
		return v.(*M), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepositoryMock[M, ID]) FindAll(ctx context.Context, sort ...models.Sort) ([]M, error) {
	args := m.MethodCalled("FindAll", sort)
	var items []M
	if v := args.Get(0); v != nil {
		items = v.([]M)
	}
	return items, args.Error(1)
}

func (m *RepositoryMock[M, ID]) FindPage(ctx context.Context, offset, limit int, sort ...models.Sort) ([]M, int64, error) {
	args := m.MethodCalled("FindPage", offset, limit, sort)
	var items []M
	if v := args.Get(0); v != nil {
		items = v.([]M)
	}
	var total int64
	if v := args.Get(1); v != nil {
		total = v.(int64)
	}
	return items, total, args.Error(2)
}

func (m *RepositoryMock[M, ID]) Count(ctx context.Context) (int64, error) {
	args := m.MethodCalled("Count")
	return args.Get(0).(int64), args.Error(1)
}

// UserRepositoryMock is a testify/mock for repositories.UserRepository.
// We use this to unit-test the service layer without touching a DB.
type UserRepositoryMock struct {
	RepositoryMock[models.User, uuid.UUID]
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.MethodCalled("FindByEmail", email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
