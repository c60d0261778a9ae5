package service

import (
	"context"
	"math"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/transport"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 1000
)

type OrderFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	ItemID    *uint
	Page      int
	Size      int
}

// FilterOrderItems lists the items of matching orders, one row per item. A blank
// status means PENDING. An empty match is reported as not found.
func (s *OrderService) FilterOrderItems(ctx context.Context, f OrderFilter) (*transport.Response, error) {
	status := models.OrderStatusPending
	if f.Status != "" {
		parsed, ok := models.ParseOrderStatus(f.Status)
		if !ok {
			return nil, validation("Invalid order status: " + f.Status)
		}
		status = parsed
	}
	if f.Page < 0 {
		return nil, validation("Page index must not be less than zero")
	}
	if f.Size < 1 {
		return nil, validation("Page size must not be less than one")
	}
	if f.Page > math.MaxInt/f.Size {
		return nil, validation("Page index is out of range")
	}

	total, items, err := s.Repo.FilterOrderItems(ctx, repo.OrderItemFilter{
		Status: status,
		Start:  f.StartDate,
		End:    f.EndDate,
		ItemID: f.ItemID,
		Offset: f.Page * f.Size,
		Limit:  f.Size,
	})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, notFound("No Order Found")
	}

	resp := transport.OK("")
	resp.OrderItemList = transport.ToOrderItemDTOs(items, nil)
	resp.TotalElement = total
	resp.TotalPage = int((total + int64(f.Size) - 1) / int64(f.Size))
	return resp, nil
}
