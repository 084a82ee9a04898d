package mocks

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisMock returns a real *redis.Client driven by a redismock controller.
// Expectations left unmet when t finishes fail the test.
func NewRedisMock(t testing.TB) (*redis.Client, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("redis: %v", err)
		}
		_ = rdb.Close()
	})
	return rdb, mock
}
