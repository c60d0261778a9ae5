package transport

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Response is the envelope every endpoint answers with. Status mirrors the HTTP code.
type Response struct {
	Status    int       `json:"status"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	Token          string `json:"token,omitempty"`
	Role           string `json:"role,omitempty"`
	ExpirationTime string `json:"expirationTime,omitempty"`

	TotalPage    int   `json:"totalPage,omitempty"`
	TotalElement int64 `json:"totalElement,omitempty"`

	User     *UserDTO  `json:"user,omitempty"`
	UserList []UserDTO `json:"userList,omitempty"`

	Category     *CategoryDTO  `json:"category,omitempty"`
	CategoryList []CategoryDTO `json:"categoryList,omitempty"`

	Product     *ProductDTO  `json:"product,omitempty"`
	ProductList []ProductDTO `json:"productList,omitempty"`

	OrderItemList []OrderItemDTO `json:"orderItemList,omitempty"`
	Order         *OrderDTO      `json:"order,omitempty"`

	Payment     *PaymentDTO  `json:"payment,omitempty"`
	PaymentList []PaymentDTO `json:"paymentList,omitempty"`

	Revenue *decimal.Decimal `json:"revenue,omitempty"`
}

func OK(msg string) *Response {
	return &Response{Status: http.StatusOK, Message: msg, Timestamp: time.Now()}
}

func BadRequest(msg string) *Response {
	return &Response{Status: http.StatusBadRequest, Message: msg, Timestamp: time.Now()}
}

func Failure(status int, msg string) *Response {
	return &Response{Status: status, Message: msg, Timestamp: time.Now()}
}

func (r *Response) Failed() bool {
	return r.Status >= http.StatusBadRequest
}
