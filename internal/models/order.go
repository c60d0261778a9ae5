package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusPaid      OrderStatus = "PAID"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusRejected,
	OrderStatusCancelled,
	OrderStatusPaid,
}

// ParseOrderStatus matches a status name case-insensitively.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	up := OrderStatus(strings.ToUpper(strings.TrimSpace(name)))
	for _, s := range orderStatuses {
		if s == up {
			return s, true
		}
	}
	return "", false
}

func (s OrderStatus) String() string { return string(s) }

type Order struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"                        json:"id"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"                     json:"totalPrice"`
	Status     OrderStatus     `gorm:"type:varchar(16);index;not null"                 json:"status"`
	CreatedAt  time.Time       `gorm:"index;not null;autoCreateTime"                   json:"createdAt"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"  json:"orderItemList"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"          json:"id"`
	OrderID   uint            `gorm:"index;not null"                    json:"orderId"`
	Order     *Order          `gorm:"foreignKey:OrderID"                json:"-"`
	ProductID uint            `gorm:"index;not null"                    json:"productId"`
	Product   *Product        `gorm:"foreignKey:ProductID"              json:"-"`
	UserID    uint            `gorm:"index;not null"                    json:"userId"`
	User      *User           `gorm:"foreignKey:UserID"                 json:"-"`
	Quantity  int             `gorm:"not null;check:quantity > 0"       json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"       json:"price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime"           json:"createdAt"`
}

// OwnedBy reports whether any line of the order was bought by userID.
func (o *Order) OwnedBy(userID uint) bool {
	for _, it := range o.Items {
		if it.UserID == userID {
			return true
		}
	}
	return false
}

// ItemsTotal sums the snapshot prices of the order lines.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price)
	}
	return total
}
