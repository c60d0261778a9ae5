package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"gorm.io/gorm"
)

// ErrStatusChanged is returned when a conditional status update matched no row.
var ErrStatusChanged = errors.New("order status changed concurrently")

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) AutoMigrate() error {
	return r.DB.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}

// Transaction runs fn against a repo bound to a single database transaction.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
