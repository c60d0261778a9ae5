package transport

import (
	"testing"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderItemDTO_FillsSummaryFromParent(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	parent := &models.Order{ID: 9, TotalPrice: decimal.RequireFromString("300"), Status: models.OrderStatusPending, CreatedAt: created}
	item := models.OrderItem{ID: 1, OrderID: 9, Quantity: 2, Price: decimal.RequireFromString("300")}

	dto := ToOrderItemDTO(&item, parent)
	require.NotNil(t, dto.Order)
	assert.Equal(t, uint(9), dto.Order.ID)
	assert.Equal(t, "PENDING", dto.Order.Status)
	assert.Equal(t, created, dto.Order.CreatedAt)
	assert.Empty(t, dto.Order.OrderItemList)
}

func TestToOrderItemDTO_KeepsLoadedOrder(t *testing.T) {
	t.Parallel()

	loaded := &models.Order{ID: 3, Status: models.OrderStatusApproved}
	other := &models.Order{ID: 4, Status: models.OrderStatusRejected}
	item := models.OrderItem{ID: 1, OrderID: 3, Order: loaded}

	dto := ToOrderItemDTO(&item, other)
	require.NotNil(t, dto.Order)
	assert.Equal(t, uint(3), dto.Order.ID)
	assert.Equal(t, "APPROVED", dto.Order.Status)
}

func TestToOrderDTO_ItemsCarrySummary(t *testing.T) {
	t.Parallel()

	o := &models.Order{
		ID:     5,
		Status: models.OrderStatusPaid,
		Items: []models.OrderItem{
			{ID: 10, Product: &models.Product{ID: 1, Name: "Pixel"}},
			{ID: 11, User: &models.User{ID: 2, Role: models.RoleUser}},
		},
	}

	dto := ToOrderDTO(o)
	require.Len(t, dto.OrderItemList, 2)
	for _, it := range dto.OrderItemList {
		require.NotNil(t, it.Order)
		assert.Equal(t, uint(5), it.Order.ID)
	}
	assert.Equal(t, "Pixel", dto.OrderItemList[0].Product.Name)
	assert.Equal(t, "USER", dto.OrderItemList[1].User.Role)
}
