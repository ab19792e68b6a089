// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/router/handler"
	"pharmacy/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	ProfileHandler       *handler.ProfileHandler
	AddressHandler       *handler.AddressHandler
	CatalogHandler       *handler.CatalogHandler
	CartHandler          *handler.CartHandler
	OrderHandler         *handler.OrderHandler
	WishlistHandler      *handler.WishlistHandler
	DeviceHandler        *handler.DeviceHandler
	AdminProductHandler  *handler.AdminProductHandler
	AdminTaxonomyHandler *handler.AdminTaxonomyHandler
	AdminOrderHandler    *handler.AdminOrderHandler
	AdminUserHandler     *handler.AdminUserHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	addressHandler       *handler.AddressHandler
	catalogHandler       *handler.CatalogHandler
	cartHandler          *handler.CartHandler
	orderHandler         *handler.OrderHandler
	wishlistHandler      *handler.WishlistHandler
	deviceHandler        *handler.DeviceHandler
	adminProductHandler  *handler.AdminProductHandler
	adminTaxonomyHandler *handler.AdminTaxonomyHandler
	adminOrderHandler    *handler.AdminOrderHandler
	adminUserHandler     *handler.AdminUserHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		profileHandler:       params.ProfileHandler,
		addressHandler:       params.AddressHandler,
		catalogHandler:       params.CatalogHandler,
		cartHandler:          params.CartHandler,
		orderHandler:         params.OrderHandler,
		wishlistHandler:      params.WishlistHandler,
		deviceHandler:        params.DeviceHandler,
		adminProductHandler:  params.AdminProductHandler,
		adminTaxonomyHandler: params.AdminTaxonomyHandler,
		adminOrderHandler:    params.AdminOrderHandler,
		adminUserHandler:     params.AdminUserHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	r.registerStorefrontRoutes(e)
	r.registerAccountRoutes(e)
	r.registerAdminRoutes(e)
}

func (r *router) registerStorefrontRoutes(e *echo.Echo) {
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:slug", r.catalogHandler.GetProduct)
	e.GET("/variants/:id", r.catalogHandler.GetVariant)
	e.GET("/categories", r.catalogHandler.ListCategories)
	e.GET("/brands", r.catalogHandler.ListBrands)
	e.GET("/search", r.catalogHandler.Search)

	// Cart routes serve both signed-in users and anonymous sessions
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuth)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}
}

func (r *router) registerAccountRoutes(e *echo.Echo) {
	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp/request", r.authHandler.RequestOTP)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Everything below requires a signed-in user
	authenticate := r.authMiddleware.Authenticate

	meGroup := e.Group("/me", authenticate)
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PATCH("", r.profileHandler.UpdateProfile)
	}

	addressesGroup := e.Group("/addresses", authenticate)
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.PUT("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	e.GET("/shipping/cost", r.orderHandler.QuoteShipping, authenticate)

	ordersGroup := e.Group("/orders", authenticate)
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetMyOrder)
		ordersGroup.POST("/:id/cancel", r.orderHandler.CancelMyOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetOrderQR)
	}

	wishlistGroup := e.Group("/wishlist", authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.ListWishlist)
		wishlistGroup.POST("", r.wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.RemoveFromWishlist)
	}

	// Device management routes
	devicesGroup := e.Group("/devices", authenticate)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) registerAdminRoutes(e *echo.Echo) {
	// Back office requires the manager or admin role
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin))

	productsGroup := admin.Group("/products")
	{
		productsGroup.GET("", r.adminProductHandler.ListProducts)
		productsGroup.POST("", r.adminProductHandler.CreateProduct)
		productsGroup.GET("/:id", r.adminProductHandler.GetProduct)
		productsGroup.PATCH("/:id", r.adminProductHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.adminProductHandler.DeleteProduct)
		productsGroup.PUT("/:id/block", r.adminProductHandler.SetProductBlocked)
		productsGroup.POST("/:id/variants", r.adminProductHandler.AddVariant)
		productsGroup.POST("/:id/images", r.adminProductHandler.UploadImage)
		productsGroup.DELETE("/:id/images/:imageId", r.adminProductHandler.DeleteImage)
	}

	variantsGroup := admin.Group("/variants")
	{
		variantsGroup.PUT("/:id", r.adminProductHandler.UpdateVariant)
		variantsGroup.DELETE("/:id", r.adminProductHandler.DeleteVariant)
	}

	brandsGroup := admin.Group("/brands")
	{
		brandsGroup.POST("", r.adminTaxonomyHandler.CreateBrand)
		brandsGroup.GET("/:id", r.adminTaxonomyHandler.GetBrand)
		brandsGroup.PUT("/:id", r.adminTaxonomyHandler.UpdateBrand)
		brandsGroup.DELETE("/:id", r.adminTaxonomyHandler.DeleteBrand)
	}

	categoriesGroup := admin.Group("/categories")
	{
		categoriesGroup.POST("", r.adminTaxonomyHandler.CreateCategory)
		categoriesGroup.GET("/:id", r.adminTaxonomyHandler.GetCategory)
		categoriesGroup.PUT("/:id", r.adminTaxonomyHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.adminTaxonomyHandler.DeleteCategory)
	}

	ordersGroup := admin.Group("/orders")
	{
		ordersGroup.GET("", r.adminOrderHandler.ListOrders)
		ordersGroup.POST("/scan", r.adminOrderHandler.ScanQR)
		ordersGroup.GET("/:id", r.adminOrderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.adminOrderHandler.UpdateStatus)
		ordersGroup.POST("/:id/refund", r.adminOrderHandler.Refund)
	}

	admin.GET("/stats", r.adminOrderHandler.Stats)

	usersGroup := admin.Group("/users")
	{
		usersGroup.GET("", r.adminUserHandler.ListUsers)
		usersGroup.PUT("/:id/block", r.adminUserHandler.SetBlocked)

		// Role changes are reserved to admins
		usersGroup.PUT("/:id/role", r.adminUserHandler.ChangeRole, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
