package mocks

import (
	"testing"
	"time"

	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis
// client: key "logs:app", 100 entries, 24h retention.
// This lets us check LPUSH/LTRIM/EXPIRE calls when Info/Warn/Error are used.
func NewRedisLoggerWithMock(t testing.TB) (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	t.Helper()
	rc, mock := NewRedisMock(t)
	return redislog.New(rc, "logs:app", 100, 24*time.Hour), rc, mock
}
