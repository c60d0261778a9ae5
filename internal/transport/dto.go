package transport

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserDTO struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	PhoneNumber   string         `json:"phoneNumber,omitempty"`
	Role          string         `json:"role"`
	CreatedAt     time.Time      `json:"createdAt"`
	Address       *AddressDTO    `json:"address,omitempty"`
	OrderItemList []OrderItemDTO `json:"orderItemList,omitempty"`
}

type AddressDTO struct {
	ID      uint   `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uint           `json:"categoryId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type OrderDTO struct {
	ID            uint            `json:"id"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	OrderItemList []OrderItemDTO  `json:"orderItemList,omitempty"`
}

type OrderItemDTO struct {
	ID        uint            `json:"id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	User      *UserDTO        `json:"user,omitempty"`
	Product   *ProductDTO     `json:"product,omitempty"`
	Order     *OrderDTO       `json:"order,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PaymentDTO struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"orderId"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

type OrderItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity"  validate:"gt=0"`
}

type CreateOrderRequest struct {
	TotalPrice *decimal.Decimal   `json:"totalPrice"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type PaymentRequest struct {
	OrderID uint            `json:"orderId" validate:"required"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
}

type RegisterRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateAdminRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AddressRequest fields left out of the body keep their stored value.
type AddressRequest struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zipCode"`
	Country *string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProductRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uint           `json:"categoryId"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"imageUrl"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"categoryId"`
}
