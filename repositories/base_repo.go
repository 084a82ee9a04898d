// Generic data-access layer shared by every entity. Talks to the database
// through gorm only; no HTTP or JSON here.
package repositories

import (
	"context"
	"errors"

	"github.com/Reactman/wakanda/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOptimisticLock is returned when an update finds the row at a different
// version than the one the caller loaded.
var ErrOptimisticLock = errors.New("entity was modified concurrently")

// BaseRepository is the CRUD surface the base service works with.
type BaseRepository[M any, ID comparable] interface {
	Save(ctx context.Context, m *M) error
	ExistsByID(ctx context.Context, id ID) (bool, error)
	DeleteByID(ctx context.Context, id ID) error
	Delete(ctx context.Context, m *M) error
	FindByID(ctx context.Context, id ID) (*M, error)
	FindAll(ctx context.Context, sort ...models.Sort) ([]M, error)
	FindPage(ctx context.Context, offset, limit int, sort ...models.Sort) ([]M, int64, error)
	Count(ctx context.Context) (int64, error)
}

// EntityPtr ties a model type to its pointer, which carries the Entity methods.
type EntityPtr[M any, ID comparable] interface {
	*M
	models.Entity[ID]
}

type baseRepo[M any, PM EntityPtr[M, ID], ID comparable] struct{ db *gorm.DB }

// NewBaseRepository returns a gorm-backed repository for M.
func NewBaseRepository[M any, PM EntityPtr[M, ID], ID comparable](db *gorm.DB) BaseRepository[M, ID] {
	return &baseRepo[M, PM, ID]{db: db}
}

const (
	colID        = "id"
	colVersion   = "version"
	colIsDeleted = "is_deleted"
)

// live scopes a query to rows that have not been soft-deleted.
func (r *baseRepo[M, PM, ID]) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(M)).Where(colIsDeleted+" = ?", false)
}

// Save inserts new entities and updates existing ones under optimistic locking.
func (r *baseRepo[M, PM, ID]) Save(ctx context.Context, m *M) error {
	e := PM(m)
	if e.IsNew() {
		e.SetVersion(0)
		return r.db.WithContext(ctx).Create(m).Error
	}

	old := e.CurrentVersion()
	e.SetVersion(old + 1)
	res := r.db.WithContext(ctx).Model(m).
		Where(colVersion+" = ? AND "+colIsDeleted+" = ?", old, false).
		Select("*").Omit("CreatedBy", "CreatedDate").
		Updates(m)
	if res.Error != nil {
		e.SetVersion(old)
		return res.Error
	}
	if res.RowsAffected == 0 {
		e.SetVersion(old)
		exists, err := r.ExistsByID(ctx, e.EntityID())
		if err != nil {
			return err
		}
		if !exists {
			return gorm.ErrRecordNotFound
		}
		return ErrOptimisticLock
	}
	return nil
}

func (r *baseRepo[M, PM, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	var n int64
	if err := r.live(ctx).Where(colID+" = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteByID flags the row as deleted. A missing or already deleted row
// yields gorm.ErrRecordNotFound.
func (r *baseRepo[M, PM, ID]) DeleteByID(ctx context.Context, id ID) error {
	res := r.live(ctx).Where(colID+" = ?", id).Update(colIsDeleted, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *baseRepo[M, PM, ID]) Delete(ctx context.Context, m *M) error {
	return r.DeleteByID(ctx, PM(m).EntityID())
}

func (r *baseRepo[M, PM, ID]) FindByID(ctx context.Context, id ID) (*M, error) {
	var m M
	if err := r.live(ctx).Where(colID+" = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *baseRepo[M, PM, ID]) FindAll(ctx context.Context, sort ...models.Sort) ([]M, error) {
	var items []M
	if err := orderBy(r.live(ctx), sort).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindPage returns one page of live rows and the total live count.
func (r *baseRepo[M, PM, ID]) FindPage(ctx context.Context, offset, limit int, sort ...models.Sort) ([]M, int64, error) {
	var (
		items []M
		total int64
	)
	if err := r.live(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := orderBy(r.live(ctx), sort).
		Limit(limit).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *baseRepo[M, PM, ID]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.live(ctx).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// orderBy applies the requested sort, falling back to id ASC so pages are
// deterministic. Column names go through clause.Column and are quoted.
func orderBy(q *gorm.DB, sort []models.Sort) *gorm.DB {
	if len(sort) == 0 {
		return q.Order(clause.OrderByColumn{Column: clause.Column{Name: colID}})
	}
	for _, s := range sort {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	return q
}

// IsNotFound checks gorm's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
