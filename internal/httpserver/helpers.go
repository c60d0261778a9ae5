package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/phone_shop/internal/models"
	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/internal/util"
	authmw "github.com/Skotchmaster/phone_shop/pkg/middleware/auth"
	"github.com/labstack/echo/v4"
)

func callerFrom(c echo.Context) (service.Caller, error) {
	id, ok := c.Get(authmw.ContextUserID).(uint)
	if !ok || id == 0 {
		return service.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	role, ok := c.Get(authmw.ContextRole).(models.Role)
	if !ok {
		return service.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return service.Caller{UserID: id, Role: role}, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := util.ParseID(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func respond(c echo.Context, resp *transport.Response) error {
	return c.JSON(resp.Status, resp)
}
