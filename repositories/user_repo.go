package repositories

import (
	"context"

	"github.com/Reactman/wakanda/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository is the base CRUD plus the lookup login needs.
type UserRepository interface {
	BaseRepository[models.User, uuid.UUID]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepo struct {
	BaseRepository[models.User, uuid.UUID]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{
		BaseRepository: NewBaseRepository[models.User, *models.User, uuid.UUID](db),
		db:             db,
	}
}

// FindByEmail looks up a live user; the email column is unique.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND "+colIsDeleted+" = ?", email, false).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// NewOrderRepository returns the base repository for customer orders.
func NewOrderRepository(db *gorm.DB) BaseRepository[models.CustomerOrder, uuid.UUID] {
	return NewBaseRepository[models.CustomerOrder, *models.CustomerOrder, uuid.UUID](db)
}
