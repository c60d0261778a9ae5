package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/internal/util"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/labstack/echo/v4"
)

type OrderHTTP struct {
	Svc *service.OrderService
	// Location applies to filter dates sent without an offset.
	Location *time.Location
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.PlaceOrder(ctx, caller, req)
	if err != nil {
		l.Warn("create_order_error", "status", StatusFor(err), "error", err)
		return err
	}

	l.Info("create_order_success", "user_id", caller.UserID)
	return respond(c, resp)
}

func (h *OrderHTTP) ApproveOrder(c echo.Context) error {
	return h.decide(c, "order.approve", h.Svc.ApproveOrder)
}

func (h *OrderHTTP) RejectOrder(c echo.Context) error {
	return h.decide(c, "order.reject", h.Svc.RejectOrder)
}

func (h *OrderHTTP) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.cancel")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.Svc.CancelOrder(ctx, caller, id)
	if err != nil {
		l.Warn("cancel_order_error", "status", StatusFor(err), "order_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	resp, err := h.Svc.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		l.Warn("update_status_error", "status", StatusFor(err), "order_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) UpdateOrderItemStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_item_status")

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	status := c.QueryParam("status")
	if status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	resp, err := h.Svc.UpdateOrderItemStatus(ctx, id, status)
	if err != nil {
		l.Warn("update_item_status_error", "status", StatusFor(err), "item_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) GetMyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetUserOrders(ctx, caller)
	if err != nil {
		logging.FromContext(ctx).Error("my_orders_error", "handler", "order.my_orders", "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) FilterOrderItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.filter")

	loc := h.Location
	if loc == nil {
		loc = time.Local
	}

	start, err := util.OptionalDateTime(c.QueryParam("startDate"), loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
	}
	end, err := util.OptionalDateTime(c.QueryParam("endDate"), loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
	}
	itemID, err := util.OptionalID(c.QueryParam("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid itemId")
	}
	page, err := util.ParseIntDefault(c.QueryParam("page"), service.DefaultPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	size, err := util.ParseIntDefault(c.QueryParam("size"), service.DefaultPageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid size")
	}

	resp, err := h.Svc.FilterOrderItems(ctx, service.OrderFilter{
		Status:    c.QueryParam("status"),
		StartDate: start,
		EndDate:   end,
		ItemID:    itemID,
		Page:      page,
		Size:      size,
	})
	if err != nil {
		l.Warn("filter_error", "status", StatusFor(err), "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *OrderHTTP) decide(c echo.Context, name string, fn func(ctx context.Context, id uint) (*transport.Response, error)) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", name)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	resp, err := fn(ctx, id)
	if err != nil {
		l.Warn("decide_order_error", "status", StatusFor(err), "order_id", id, "error", err)
		return err
	}
	if resp.Failed() {
		l.Warn("decide_order_rejected", "status", resp.Status, "order_id", id, "reason", resp.Message)
	}
	return respond(c, resp)
}
