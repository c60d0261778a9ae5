package repo

import (
	"context"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/shopspring/decimal"
)

func (r *GormRepo) CreatePayment(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormRepo) PaymentExists(ctx context.Context, orderID uint) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Payment{}).Where("order_id = ?", orderID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) GetPaymentByOrderID(ctx context.Context, orderID uint) (*models.Payment, error) {
	var p models.Payment
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SuccessfulPaymentAmounts lists amounts of SUCCESS payments created inside
// [from, to]. Nil bounds are open.
func (r *GormRepo) SuccessfulPaymentAmounts(ctx context.Context, from, to *time.Time) ([]decimal.Decimal, error) {
	q := r.DB.WithContext(ctx).Model(&models.Payment{}).Where("status = ?", models.PaymentStatusSuccess)
	if from != nil {
		q = q.Where("created_at >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("created_at <= ?", to.UTC())
	}

	var amounts []decimal.Decimal
	if err := q.Pluck("amount", &amounts).Error; err != nil {
		return nil, err
	}
	return amounts, nil
}
