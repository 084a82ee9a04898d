// Use-case layer; orchestrates business rules, not HTTP/DB details.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/redis/go-redis/v9"
)

const (
	cacheTTL     = 10 * time.Minute
	defaultLimit = 10
	maxLimit     = 100
)

// BaseService is the generic CRUD use-case surface; reads go through a
// redis cache when one is configured.
type BaseService[M any, ID comparable] interface {
	Save(ctx context.Context, m *M) (*M, error)
	Exists(ctx context.Context, id ID) (bool, error)
	Delete(ctx context.Context, id ID) error
	DeleteEntity(ctx context.Context, m *M) error
	FindOne(ctx context.Context, id ID) (*M, error)
	FindAll(ctx context.Context, sort ...models.Sort) ([]M, error)
	FindPage(ctx context.Context, page, limit int, sort ...models.Sort) (*models.Page[M], error)
	Count(ctx context.Context) (int64, error)
}

type baseService[M any, PM repositories.EntityPtr[M, ID], ID comparable] struct {
	repo   repositories.BaseRepository[M, ID]
	rdb    *redis.Client    // nil disables caching
	log    *redislog.Logger // nil-safe
	prefix string           // cache key prefix, e.g. "order"
}

// NewBaseService wires a repository to the cache under keys "<prefix>:<id>".
func NewBaseService[M any, PM repositories.EntityPtr[M, ID], ID comparable](
	repo repositories.BaseRepository[M, ID], rdb *redis.Client, rlog *redislog.Logger, prefix string,
) BaseService[M, ID] {
	return &baseService[M, PM, ID]{repo: repo, rdb: rdb, log: rlog, prefix: prefix}
}

func (s *baseService[M, PM, ID]) cacheKey(id ID) string {
	return fmt.Sprintf("%s:%v", s.prefix, id)
}

// Paginate clamps page to >= 1 and limit to 1..100 (default 10) and
// returns the matching offset.
func Paginate(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// Save persists m and refreshes its cache entry. An update writes only
// part of the row, so the stored row is read back and that copy is both
// cached and returned.
func (s *baseService[M, PM, ID]) Save(ctx context.Context, m *M) (*M, error) {
	created := PM(m).IsNew()
	if err := s.repo.Save(ctx, m); err != nil {
		s.log.Error(ctx, "save failed", map[string]string{"prefix": s.prefix, "err": err.Error()})
		return nil, err
	}
	id := PM(m).EntityID()
	key := s.cacheKey(id)
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, key).Err()
	}

	saved := m
	if !created {
		stored, err := s.repo.FindByID(ctx, id)
		if err != nil {
			s.log.Warn(ctx, "reload after update failed", map[string]string{"key": key, "err": err.Error()})
			return m, nil
		}
		saved = stored
	}
	s.cacheSet(ctx, key, saved)
	s.log.Info(ctx, "save success", map[string]string{"key": key, "version": fmt.Sprint(PM(saved).CurrentVersion())})
	return saved, nil
}

func (s *baseService[M, PM, ID]) cacheSet(ctx context.Context, key string, m *M) {
	if s.rdb == nil {
		return
	}
	if b, _ := json.Marshal(m); len(b) > 0 {
		if err := s.rdb.Set(ctx, key, b, cacheTTL).Err(); err != nil {
			s.log.Error(ctx, "cache SET error", map[string]string{"key": key, "err": err.Error()})
		}
	}
}

func (s *baseService[M, PM, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// Delete soft-deletes the row and drops its cache entry.
func (s *baseService[M, PM, ID]) Delete(ctx context.Context, id ID) error {
	key := s.cacheKey(id)
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error(ctx, "delete failed", map[string]string{"key": key, "err": err.Error()})
		return err
	}
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, key).Err()
	}
	s.log.Info(ctx, "delete success", map[string]string{"key": key})
	return nil
}

func (s *baseService[M, PM, ID]) DeleteEntity(ctx context.Context, m *M) error {
	return s.Delete(ctx, PM(m).EntityID())
}

// FindOne prefers the cache and falls back to the repository, caching what it finds.
func (s *baseService[M, PM, ID]) FindOne(ctx context.Context, id ID) (*M, error) {
	key := s.cacheKey(id)
	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var m M
			if json.Unmarshal([]byte(val), &m) == nil {
				s.log.Info(ctx, "cache HIT", map[string]string{"key": key})
				return &m, nil
			}
			s.log.Warn(ctx, "cache unmarshal failed", map[string]string{"key": key})
		case errors.Is(err, redis.Nil):
			s.log.Warn(ctx, "cache MISS", map[string]string{"key": key})
		default:
			s.log.Error(ctx, "cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, m)
	return m, nil
}

func (s *baseService[M, PM, ID]) FindAll(ctx context.Context, sort ...models.Sort) ([]M, error) {
	return s.repo.FindAll(ctx, sort...)
}

// FindPage returns page (1-based) of at most limit live rows.
func (s *baseService[M, PM, ID]) FindPage(ctx context.Context, page, limit int, sort ...models.Sort) (*models.Page[M], error) {
	page, limit, offset := Paginate(page, limit)
	items, total, err := s.repo.FindPage(ctx, offset, limit, sort...)
	if err != nil {
		s.log.Error(ctx, "page query failed", map[string]string{"prefix": s.prefix, "err": err.Error()})
		return nil, err
	}
	if items == nil {
		items = []M{}
	}
	return &models.Page[M]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *baseService[M, PM, ID]) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
