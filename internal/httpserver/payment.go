package httpserver

import (
	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/labstack/echo/v4"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) ProcessPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.process")

	var req transport.PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("process_payment_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.ProcessPayment(ctx, req)
	if err != nil {
		l.Warn("process_payment_error", "status", StatusFor(err), "order_id", req.OrderID, "error", err)
		return err
	}
	if resp.Failed() {
		l.Warn("process_payment_rejected", "status", resp.Status, "order_id", req.OrderID, "reason", resp.Message)
	}
	return respond(c, resp)
}

func (h *PaymentHTTP) GetPaymentByOrder(c echo.Context) error {
	id, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetPaymentByOrderID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *PaymentHTTP) GetAllPayments(c echo.Context) error {
	resp, err := h.Svc.GetAllPayments(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *PaymentHTTP) GetRevenueStats(c echo.Context) error {
	resp, err := h.Svc.GetRevenueStats(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return err
	}
	return respond(c, resp)
}
