package repo

import (
	"context"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"gorm.io/gorm"
)

type OrderItemFilter struct {
	Status models.OrderStatus
	Start  *time.Time
	End    *time.Time
	ItemID *uint
	Offset int
	Limit  int
}

// FilterOrderItems returns the items of every order matching f, oldest order first.
// An ItemID keeps the whole order that contains that item.
func (r *GormRepo) FilterOrderItems(ctx context.Context, f OrderItemFilter) (int64, []models.OrderItem, error) {
	base := func() *gorm.DB {
		q := r.DB.WithContext(ctx).
			Model(&models.OrderItem{}).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.status = ?", f.Status)
		if f.Start != nil {
			q = q.Where("orders.created_at >= ?", f.Start.UTC())
		}
		if f.End != nil {
			q = q.Where("orders.created_at <= ?", f.End.UTC())
		}
		if f.ItemID != nil {
			sub := r.DB.Model(&models.OrderItem{}).Select("order_id").Where("id = ?", *f.ItemID)
			q = q.Where("order_items.order_id IN (?)", sub)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return 0, nil, err
	}
	if total == 0 {
		return 0, nil, nil
	}

	var items []models.OrderItem
	err := base().
		Select("order_items.*").
		Order("orders.created_at ASC").
		Order("orders.id ASC").
		Order("order_items.id ASC").
		Offset(f.Offset).
		Limit(f.Limit).
		Preload("Order").
		Preload("Product").
		Preload("User").
		Find(&items).Error
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
