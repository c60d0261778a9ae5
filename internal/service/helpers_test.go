package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/repo"
	pkgdb "github.com/Skotchmaster/phone_shop/pkg/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := pkgdb.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
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

func seedUser(t *testing.T, r *repo.GormRepo, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Name:         "user",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, r.CreateUser(context.Background(), u))
	return u
}

func seedProduct(t *testing.T, r *repo.GormRepo, name, price string) *models.Product {
	t.Helper()
	p, err := r.CreateProduct(context.Background(), &models.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return p
}

type itemSeed struct {
	product  *models.Product
	quantity int
}

// seedOrder stores an order for user created at the given instant.
func seedOrder(t *testing.T, r *repo.GormRepo, user *models.User, status models.OrderStatus, created time.Time, lines ...itemSeed) *models.Order {
	t.Helper()

	o := &models.Order{Status: status, CreatedAt: created}
	for _, l := range lines {
		o.Items = append(o.Items, models.OrderItem{
			ProductID: l.product.ID,
			UserID:    user.ID,
			Quantity:  l.quantity,
			Price:     l.product.Price.Mul(decimal.NewFromInt(int64(l.quantity))),
		})
	}
	o.TotalPrice = o.ItemsTotal()

	stored, err := r.CreateOrder(context.Background(), o)
	require.NoError(t, err)
	return stored
}

func orderStatus(t *testing.T, r *repo.GormRepo, id uint) models.OrderStatus {
	t.Helper()
	o, err := r.GetOrder(context.Background(), id)
	require.NoError(t, err)
	return o.Status
}

type publishedEvent struct {
	Topic string
	Key   string
	Event Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Key: key, Event: event.(Event)})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event.Type)
	}
	return out
}

var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func callerOf(u *models.User) Caller {
	return Caller{UserID: u.ID, Role: u.Role}
}
