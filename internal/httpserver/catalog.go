package httpserver

import (
	"github.com/Skotchmaster/phone_shop/internal/service"
	"github.com/Skotchmaster/phone_shop/internal/transport"
	"github.com/Skotchmaster/phone_shop/pkg/logging"
	"github.com/labstack/echo/v4"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	var req transport.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.Svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) GetAllCategories(c echo.Context) error {
	resp, err := h.Svc.GetAllCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}
	resp, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		l.Warn("product_create_error", "status", StatusFor(err), "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	resp, err := h.Svc.GetAllProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) GetProductsByCategory(c echo.Context) error {
	id, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}
	resp, err := h.Svc.GetProductsByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	resp, err := h.Svc.SearchProducts(c.Request().Context(), c.QueryParam("searchValue"))
	if err != nil {
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	resp, err := h.Svc.DeleteProduct(ctx, id)
	if err != nil {
		l.Warn("product_delete_error", "status", StatusFor(err), "product_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	var req transport.UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}
	resp, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		l.Warn("product_update_error", "status", StatusFor(err), "product_id", id, "error", err)
		return err
	}
	return respond(c, resp)
}
