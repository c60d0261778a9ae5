package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/kafka"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/Skotchmaster/phone_shop/pkg/metrics"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	Repo    *repo.GormRepo
	Events  kafka.Publisher
	Metrics *metrics.ServerMetrics
}

func (s *OrderService) PlaceOrder(ctx context.Context, caller Caller, req transport.CreateOrderRequest) (*transport.Response, error) {
	if !caller.Authenticated() {
		return nil, forbidden("Authentication required")
	}
	if caller.Role.IsAdmin() {
		return nil, forbidden("Admin accounts cannot place orders")
	}
	if len(req.Items) == 0 {
		return nil, validation("Order must contain at least one item")
	}

	var order *models.Order
	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetUserByID(ctx, caller.UserID); err != nil {
			if repo.IsNotFound(err) {
				return unauthenticated("User not found")
			}
			return err
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			if line.Quantity <= 0 {
				return validation("Quantity must be greater than zero")
			}
			product, err := tx.GetProduct(ctx, line.ProductID)
			if err != nil {
				if repo.IsNotFound(err) {
					return notFound("Product Not Found")
				}
				return err
			}
			items = append(items, models.OrderItem{
				ProductID: product.ID,
				UserID:    caller.UserID,
				Quantity:  line.Quantity,
				Price:     product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
			})
		}

		o := &models.Order{Status: models.OrderStatusPending, Items: items}
		o.TotalPrice = o.ItemsTotal()
		if req.TotalPrice != nil && req.TotalPrice.IsPositive() {
			o.TotalPrice = *req.TotalPrice
		}

		created, err := tx.CreateOrder(ctx, o)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.IncOrdersPlaced()
	publish(ctx, s.Events, TopicOrderEvents, EventOrderCreated, order.ID, map[string]any{
		"user_id":     caller.UserID,
		"total_price": order.TotalPrice.String(),
		"items":       len(order.Items),
	})

	logging.FromContext(ctx).With("svc", "order.place").Info("order_placed", "order_id", order.ID, "user_id", caller.UserID)
	return transport.OK("Order was successfully placed"), nil
}

func (s *OrderService) ApproveOrder(ctx context.Context, id uint) (*transport.Response, error) {
	return s.decide(ctx, id, models.OrderStatusApproved, "approved")
}

func (s *OrderService) RejectOrder(ctx context.Context, id uint) (*transport.Response, error) {
	return s.decide(ctx, id, models.OrderStatusRejected, "rejected")
}

func (s *OrderService) CancelOrder(ctx context.Context, caller Caller, id uint) (*transport.Response, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.OwnedBy(caller.UserID) {
		return nil, forbidden("You don't have permission to cancel this order")
	}
	return s.moveFromPending(ctx, order, models.OrderStatusCancelled, "cancelled")
}

// UpdateOrderStatus sets any known status without checking the current one.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, name string) (*transport.Response, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.override(ctx, order.ID, order.Status, name)
}

func (s *OrderService) UpdateOrderItemStatus(ctx context.Context, itemID uint, name string) (*transport.Response, error) {
	item, err := s.Repo.GetOrderItem(ctx, itemID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Order Item not found")
		}
		return nil, err
	}
	order, err := s.loadOrder(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	return s.override(ctx, order.ID, order.Status, name)
}

func (s *OrderService) GetUserOrders(ctx context.Context, caller Caller) (*transport.Response, error) {
	items, err := s.Repo.ListUserOrderItems(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("User orders retrieved successfully")
	resp.OrderItemList = transport.ToOrderItemDTOs(items, nil)
	return resp, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*transport.Response, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("Order retrieved successfully")
	resp.Order = transport.ToOrderDTO(order)
	return resp, nil
}

func (s *OrderService) loadOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) decide(ctx context.Context, id uint, to models.OrderStatus, verb string) (*transport.Response, error) {
	order, err := s.loadOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.moveFromPending(ctx, order, to, verb)
}

func (s *OrderService) moveFromPending(ctx context.Context, order *models.Order, to models.OrderStatus, verb string) (*transport.Response, error) {
	notPending := transport.BadRequest(fmt.Sprintf("Order can only be %s if it is in PENDING status", verb))
	if order.Status != models.OrderStatusPending {
		return notPending, nil
	}

	if err := s.Repo.SwapOrderStatus(ctx, order.ID, models.OrderStatusPending, to); err != nil {
		if errors.Is(err, repo.ErrStatusChanged) {
			return notPending, nil
		}
		return nil, err
	}

	publish(ctx, s.Events, TopicOrderEvents, EventOrderStatusChanged, order.ID, statusChange{
		From: models.OrderStatusPending.String(),
		To:   to.String(),
	})
	return transport.OK("Order " + verb + " successfully"), nil
}

func (s *OrderService) override(ctx context.Context, orderID uint, from models.OrderStatus, name string) (*transport.Response, error) {
	to, ok := models.ParseOrderStatus(name)
	if !ok {
		return transport.BadRequest("Invalid order status: " + name), nil
	}
	if err := s.Repo.UpdateOrderStatus(ctx, orderID, to); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}

	logging.FromContext(ctx).With("svc", "order.override").Info("order_status_overridden", "order_id", orderID, "from", from, "to", to)
	publish(ctx, s.Events, TopicOrderEvents, EventOrderStatusChanged, orderID, statusChange{From: from.String(), To: to.String()})
	return transport.OK("Order status updated successfully"), nil
}
