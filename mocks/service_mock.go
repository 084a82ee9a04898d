package mocks

import (
	"context"

	"github.com/Reactman/wakanda/models"

	"github.com/stretchr/testify/mock"
)

// ServiceMock is a testify/mock for services.BaseService, used by the
// generic entity handler tests.
type ServiceMock[M any, ID comparable] struct{ mock.Mock }

func entityOrNil[M any](args mock.Arguments) (*M, error) {
	if v := args.Get(0); v != nil {
		return v.(*M), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceMock[M, ID]) Save(ctx context.Context, e *M) (*M, error) {
	return entityOrNil[M](m.MethodCalled("Save", e))
}

func (m *ServiceMock[M, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	args := m.MethodCalled("Exists", id)
	return args.Bool(0), args.Error(1)
}

func (m *ServiceMock[M, ID]) Delete(ctx context.Context, id ID) error {
	return m.MethodCalled("Delete", id).Error(0)
}

func (m *ServiceMock[M, ID]) DeleteEntity(ctx context.Context, e *M) error {
	return m.MethodCalled("DeleteEntity", e).Error(0)
}

func (m *ServiceMock[M, ID]) FindOne(ctx context.Context, id ID) (*M, error) {
	return entityOrNil[M](m.MethodCalled("FindOne", id))
}

func (m *ServiceMock[M, ID]) FindAll(ctx context.Context, sort ...models.Sort) ([]M, error) {
	args := m.MethodCalled("FindAll", sort)
	var items []M
	if v := args.Get(0); v != nil {
		items = v.([]M)
	}
	return items, args.Error(1)
}

func (m *ServiceMock[M, ID]) FindPage(ctx context.Context, page, limit int, sort ...models.Sort) (*models.Page[M], error) {
	args := m.MethodCalled("FindPage", page, limit, sort)
	if v := args.Get(0); v != nil {
		return v.(*models.Page[M]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceMock[M, ID]) Count(ctx context.Context) (int64, error) {
	args := m.MethodCalled("Count")
	return args.Get(0).(int64), args.Error(1)
}
