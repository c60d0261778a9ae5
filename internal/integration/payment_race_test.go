package integration

import (
	"context"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	pkgdb "github.com/Skotchmaster/phone_shop/pkg/db"
	"github.com/Skotchmaster/phone_shop/pkg/kafka"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real postgres: ORDER_TEST_DATABASE_URL=postgres://... go test ./internal/integration
func newPostgresRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := os.Getenv("ORDER_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("ORDER_TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := pkgdb.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	r := &repo.GormRepo{DB: db}
	require.NoError(t, r.AutoMigrate())
	return r
}

func TestConcurrentPaymentsPayOnce(t *testing.T) {
	r := newPostgresRepo(t)
	ctx := context.Background()

	user := &models.User{Name: "race", Email: uuid.NewString() + "@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, r.CreateUser(ctx, user))
	product, err := r.CreateProduct(ctx, &models.Product{Name: "Pixel", Description: "race", Price: decimal.RequireFromString("499.90")})
	require.NoError(t, err)

	order, err := r.CreateOrder(ctx, &models.Order{
		Status:     models.OrderStatusApproved,
		TotalPrice: product.Price,
		Items: []models.OrderItem{{
			ProductID: product.ID,
			UserID:    user.ID,
			Quantity:  1,
			Price:     product.Price,
		}},
	})
	require.NoError(t, err)

	svc := &service.PaymentService{Repo: r, Events: kafka.Nop{}}

	const payers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		resps []*transport.Response
		errs  []error
	)
	start := make(chan struct{})
	for i := 0; i < payers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			resp, err := svc.ProcessPayment(ctx, transport.PaymentRequest{OrderID: order.ID, Amount: product.Price})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			resps = append(resps, resp)
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, resps, payers)

	succeeded := 0
	for _, resp := range resps {
		if resp.Status == http.StatusOK {
			succeeded++
			continue
		}
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, "Payment already exists for this order", resp.Message)
	}
	assert.Equal(t, 1, succeeded)

	stored, err := r.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)

	payment, err := r.GetPaymentByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, product.Price.Equal(payment.Amount))
}
