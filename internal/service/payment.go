package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/kafka"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/Skotchmaster/phone_shop/pkg/metrics"
	"github.com/shopspring/decimal"
)

const msgPaymentExists = "Payment already exists for this order"

type PaymentService struct {
	Repo    *repo.GormRepo
	Events  kafka.Publisher
	Metrics *metrics.ServerMetrics
	Now     func() time.Time
}

func (s *PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ProcessPayment records the payment of an approved order and marks it PAID.
// Both writes share one transaction; the status swap admits a single payer.
func (s *PaymentService) ProcessPayment(ctx context.Context, req transport.PaymentRequest) (*transport.Response, error) {
	l := logging.FromContext(ctx).With("svc", "payment.process", "order_id", req.OrderID)

	order, err := s.Repo.GetOrder(ctx, req.OrderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Order not found")
		}
		return nil, err
	}

	exists, err := s.Repo.PaymentExists(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return transport.BadRequest(msgPaymentExists), nil
	}

	if order.Status != models.OrderStatusApproved {
		return transport.BadRequest("Order must be approved before payment can be processed"), nil
	}

	if !req.Amount.Equal(order.TotalPrice) {
		return transport.BadRequest("Payment amount does not match order total"), nil
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = models.DefaultPaymentMethod
	}

	var payment *models.Payment
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if err := tx.SwapOrderStatus(ctx, order.ID, models.OrderStatusApproved, models.OrderStatusPaid); err != nil {
			return err
		}
		p, err := tx.CreatePayment(ctx, &models.Payment{
			OrderID: order.ID,
			Amount:  req.Amount,
			Method:  method,
			Status:  models.PaymentStatusSuccess,
		})
		if err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		if errors.Is(err, repo.ErrStatusChanged) || repo.IsDuplicate(err) {
			l.Warn("payment_race_lost", "error", err)
			return transport.BadRequest(msgPaymentExists), nil
		}
		return nil, err
	}

	s.Metrics.IncPaymentsProcessed()
	publish(ctx, s.Events, TopicPaymentEvents, EventPaymentProcessed, order.ID, map[string]any{
		"payment_id": payment.ID,
		"amount":     payment.Amount.String(),
		"method":     payment.Method,
	})
	l.Info("payment_processed", "payment_id", payment.ID)

	return transport.OK("Payment processed successfully"), nil
}

func (s *PaymentService) GetPaymentByOrderID(ctx context.Context, orderID uint) (*transport.Response, error) {
	p, err := s.Repo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound("Payment not found for this order")
		}
		return nil, err
	}
	resp := transport.OK("Payment retrieved successfully")
	resp.Payment = transport.ToPaymentDTO(p)
	return resp, nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) (*transport.Response, error) {
	ps, err := s.Repo.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	resp := transport.OK("Payments retrieved successfully")
	resp.PaymentList = transport.ToPaymentDTOs(ps)
	return resp, nil
}

func (s *PaymentService) GetRevenueStats(ctx context.Context, period string) (*transport.Response, error) {
	from, to := RevenueWindow(s.now(), period)

	amounts, err := s.Repo.SuccessfulPaymentAmounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	resp := transport.OK("Revenue statistics retrieved successfully")
	resp.Revenue = &total
	return resp, nil
}

// RevenueWindow maps a period name to its [from, to] bounds. Unknown names and
// "all" have no bounds.
func RevenueWindow(now time.Time, period string) (*time.Time, *time.Time) {
	var from time.Time
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "day":
		y, m, d := now.Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case "week":
		from = now.AddDate(0, 0, -7)
	case "month":
		from = now.AddDate(0, -1, 0)
	default:
		return nil, nil
	}
	return &from, &now
}
