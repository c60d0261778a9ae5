package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteAndStatus(t *testing.T) {
	m := NewServerMetrics(prometheus.NewRegistry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/order/:id", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusForbidden, "no") })

	for _, path := range []string{"/order/1", "/order/2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/order/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/boom", "403")))
}

func TestDomainCounters_NilSafe(t *testing.T) {
	var nilMetrics *ServerMetrics
	nilMetrics.IncOrdersPlaced()
	nilMetrics.IncPaymentsProcessed()

	m := NewServerMetrics(nil)
	m.IncOrdersPlaced()
	m.IncPaymentsProcessed()
	m.IncPaymentsProcessed()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersPlaced))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PaymentsProcessed))
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := NewServerMetrics(prometheus.NewRegistry())
	m.IncOrdersPlaced()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phoneshop_orders_placed_total 1")
}
