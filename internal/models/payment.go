package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusSuccess = "SUCCESS"
	DefaultPaymentMethod = "BANK_TRANSFER"
)

type Payment struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"           json:"id"`
	OrderID   uint            `gorm:"uniqueIndex;not null"               json:"orderId"`
	Order     *Order          `gorm:"foreignKey:OrderID"                 json:"-"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"        json:"amount"`
	Method    string          `gorm:"not null"                           json:"method"`
	Status    string          `gorm:"index;not null"                     json:"status"`
	CreatedAt time.Time       `gorm:"index;not null;autoCreateTime"      json:"createdAt"`
}
