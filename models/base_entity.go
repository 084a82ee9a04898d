// Base entity embedded by every persisted model.

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity is what the generic repository needs to know about a model.
type Entity[ID comparable] interface {
	EntityID() ID
	SetEntityID(id ID)
	IsNew() bool
	CurrentVersion() int
	SetVersion(v int)
}

// BaseEntity carries the UUID key, audit columns, the optimistic-lock
// version and the soft-delete flag.
// created_* columns are written once (<-:create); CreatedBy/UpdatedBy are
// filled by the auditing callbacks, the dates by gorm.
type BaseEntity struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedBy   string    `gorm:"size:64;<-:create" json:"created_by"`
	CreatedDate time.Time `gorm:"autoCreateTime;<-:create" json:"created_date"`
	UpdatedBy   string    `gorm:"size:64" json:"updated_by"`
	UpdatedDate time.Time `gorm:"autoUpdateTime" json:"updated_date"`
	Version     int       `gorm:"not null" json:"version"`
	IsDeleted   bool      `gorm:"not null;index" json:"-"`
}

var _ Entity[uuid.UUID] = (*BaseEntity)(nil)

func (e BaseEntity) EntityID() uuid.UUID      { return e.ID }
func (e *BaseEntity) SetEntityID(id uuid.UUID) { e.ID = id }
func (e BaseEntity) IsNew() bool              { return e.ID == uuid.Nil }
func (e BaseEntity) CurrentVersion() int      { return e.Version }
func (e *BaseEntity) SetVersion(v int)         { e.Version = v }

// BeforeCreate assigns a random UUID unless the caller chose one.
func (e *BaseEntity) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
