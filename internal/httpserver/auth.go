package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/labstack/echo/v4"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.Register(ctx, req)
	if err != nil {
		l.Warn("register_error", "status", StatusFor(err), "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login_error", "status", StatusFor(err), "error", err)
		return err
	}
	l.Info("login_success")
	return respond(c, resp)
}

func (h *AuthHTTP) GetAllUsers(c echo.Context) error {
	resp, err := h.Svc.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) GetAllAdmins(c echo.Context) error {
	resp, err := h.Svc.GetAllAdmins(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) GetMyInfo(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetMyInfo(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) CreateNormalAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_normal_admin")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req transport.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.Svc.CreateNormalAdmin(ctx, caller, req)
	if err != nil {
		l.Warn("create_normal_admin_error", "status", StatusFor(err), "error", err)
		return err
	}
	l.Info("create_normal_admin_success", "user_id", resp.User.ID)
	return respond(c, resp)
}

func (h *AuthHTTP) UpdateNormalAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_normal_admin")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "adminId")
	if err != nil {
		return err
	}
	var req transport.UpdateAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("update_normal_admin_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.UpdateNormalAdmin(ctx, caller, id, req)
	if err != nil {
		l.Warn("update_normal_admin_error", "status", StatusFor(err), "admin_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) DeleteNormalAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_normal_admin")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "adminId")
	if err != nil {
		return err
	}

	resp, err := h.Svc.DeleteNormalAdmin(ctx, caller, id)
	if err != nil {
		l.Warn("delete_normal_admin_error", "status", StatusFor(err), "admin_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) ChangeNormalAdminPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.change_normal_admin_password")

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "adminId")
	if err != nil {
		return err
	}
	oldPassword, newPassword := c.QueryParam("oldPassword"), c.QueryParam("newPassword")
	if oldPassword == "" || newPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "oldPassword and newPassword are required")
	}

	resp, err := h.Svc.ChangeNormalAdminPassword(ctx, caller, id, oldPassword, newPassword)
	if err != nil {
		l.Warn("change_password_error", "status", StatusFor(err), "admin_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *AuthHTTP) SaveAddress(c echo.Context) error {
	ctx := c.Request().Context()

	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req transport.AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.Svc.SaveAddress(ctx, caller, req)
	if err != nil {
		logging.FromContext(ctx).Warn("save_address_error", "handler", "address.save", "status", StatusFor(err), "error", err)
		return err
	}
	return respond(c, resp)
}
