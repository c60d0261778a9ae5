package httpserver

import (
	"net/http"

	"github.com/Skotchmaster/phone_shop/internal/models"
	middleware "github.com/Skotchmaster/phone_shop/pkg/middleware/auth"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	OrderHandler   *OrderHTTP
	PaymentHandler *PaymentHTTP
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	JWTSecret      []byte
	Ready          func() error
	Metrics        http.Handler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(); err != nil {
				return c.NoContent(http.StatusServiceUnavailable)
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	authMW := middleware.NewJWTMiddleware(d.JWTSecret)
	admins := authMW.RequireRoles(models.AdminRoles...)
	anyRole := authMW.RequireRoles(models.RoleUser, models.RoleAdmin, models.RoleNormalAdmin)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)

	users := e.Group("/user")
	users.GET("/get-all", d.AuthHandler.GetAllUsers, admins)
	users.GET("/admin/get-all", d.AuthHandler.GetAllAdmins, admins)
	users.GET("/my-info", d.AuthHandler.GetMyInfo, authMW.RequireAuth)
	adminOnly := authMW.RequireRoles(models.RoleAdmin)
	users.POST("/admin/create-normal-admin", d.AuthHandler.CreateNormalAdmin, adminOnly)
	users.PUT("/admin/update-normal-admin/:adminId", d.AuthHandler.UpdateNormalAdmin, adminOnly)
	users.DELETE("/admin/delete-normal-admin/:adminId", d.AuthHandler.DeleteNormalAdmin, adminOnly)
	users.PUT("/admin/change-normal-admin-password/:adminId", d.AuthHandler.ChangeNormalAdminPassword, adminOnly)

	e.POST("/address/save", d.AuthHandler.SaveAddress, authMW.RequireAuth)

	categories := e.Group("/category")
	categories.GET("/get-all", d.CatalogHandler.GetAllCategories)
	categories.POST("/create", d.CatalogHandler.CreateCategory, admins)

	products := e.Group("/product")
	products.GET("/get-all", d.CatalogHandler.GetProducts)
	products.GET("/get-by-product-id/:productId", d.CatalogHandler.GetProduct)
	products.GET("/get-by-category-id/:categoryId", d.CatalogHandler.GetProductsByCategory)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.POST("/create", d.CatalogHandler.CreateProduct, admins)
	products.PUT("/update/:productId", d.CatalogHandler.UpdateProduct, admins)
	products.DELETE("/delete/:productId", d.CatalogHandler.DeleteProduct, admins)

	orders := e.Group("/order")
	orders.POST("/create", d.OrderHandler.CreateOrder, authMW.RequireAuth)
	orders.PUT("/cancel/:id", d.OrderHandler.CancelOrder, authMW.RequireAuth)
	orders.GET("/my-orders", d.OrderHandler.GetMyOrders, authMW.RequireAuth)
	orders.GET("/:id", d.OrderHandler.GetOrder, anyRole)
	orders.GET("/filter", d.OrderHandler.FilterOrderItems, admins)
	orders.PUT("/approve/:id", d.OrderHandler.ApproveOrder, admins)
	orders.PUT("/reject/:id", d.OrderHandler.RejectOrder, admins)
	orders.PUT("/update-status/:id", d.OrderHandler.UpdateOrderStatus, admins)
	orders.PUT("/update-item-status/:id", d.OrderHandler.UpdateOrderItemStatus, admins)

	payments := e.Group("/payment")
	payments.POST("/process", d.PaymentHandler.ProcessPayment, authMW.RequireAuth)
	payments.GET("/order/:orderId", d.PaymentHandler.GetPaymentByOrder, authMW.RequireAuth)
	payments.GET("/all", d.PaymentHandler.GetAllPayments, admins)
	payments.GET("/revenue-stats", d.PaymentHandler.GetRevenueStats, admins)
}
