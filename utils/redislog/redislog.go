// Package redislog writes structured application events into a capped
// redis LIST.
package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/Reactman/wakanda/auditing"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes logs to a Redis LIST (e.g., "logs:app") and trims to a max length.
// A nil *Logger, or one without a client, discards everything.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	now       func() time.Time
}

func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// log pushes a log entry as JSON -> LPUSH; then LTRIM; then EXPIRE.
// The auditor carried by ctx, if any, is added to the meta under "auditor".
func (l *Logger) log(ctx context.Context, level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	if who, ok := auditing.AuditorFrom(ctx); ok {
		meta = maps.Clone(meta)
		if meta == nil {
			meta = map[string]string{}
		}
		meta["auditor"] = who
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	// the request may already be cancelled; logging must not be
	bg := context.WithoutCancel(ctx)
	_ = l.rdb.LPush(bg, l.key, b).Err()
	if l.max > 0 {
		_ = l.rdb.LTrim(bg, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(bg, l.key, l.retention).Err()
	}
}

// Recent returns up to n newest entries.
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if l == nil || l.rdb == nil || n <= 0 {
		return nil, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redislog: read %s: %w", l.key, err)
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var e Entry
		if json.Unmarshal([]byte(s), &e) == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *Logger) Info(ctx context.Context, msg string, meta map[string]string) {
	l.log(ctx, "info", msg, meta)
}
func (l *Logger) Warn(ctx context.Context, msg string, meta map[string]string) {
	l.log(ctx, "warn", msg, meta)
}
func (l *Logger) Error(ctx context.Context, msg string, meta map[string]string) {
	l.log(ctx, "error", msg, meta)
}

// Formatted variants
func (l *Logger) Infof(ctx context.Context, format string, meta map[string]string, args ...any) {
	l.Info(ctx, fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(ctx context.Context, format string, meta map[string]string, args ...any) {
	l.Warn(ctx, fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(ctx context.Context, format string, meta map[string]string, args ...any) {
	l.Error(ctx, fmt.Sprintf(format, args...), meta)
}
