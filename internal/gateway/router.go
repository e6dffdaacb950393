// Package gateway assembles the dashboard HTTP API: middleware chain, public
// auth routes and the protected per-screen routes.
package gateway

import (
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/gateway/handlers"
	"hotelops-dashboard/internal/gateway/middleware"
	"hotelops-dashboard/internal/health"
	"hotelops-dashboard/internal/utils"
)

type Options struct {
	Deps   handlers.Deps
	Tokens *utils.TokenManager

	// Either may be nil when no audit database is configured.
	AuditRecorder middleware.AuditRecorder
	AuditReader   handlers.AuditReader

	Health               *health.Checker
	AllowedOrigins       []string
	RateLimit            string
	SlowRequestThreshold time.Duration
}

func NewRouter(opts Options) *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}
	if opts.RateLimit != "" {
		r.Use(middleware.RateLimit(opts.RateLimit))
	}
	if opts.SlowRequestThreshold > 0 {
		r.Use(middleware.SlowRequestLogger(opts.SlowRequestThreshold))
	}
	if opts.Health != nil {
		r.Use(opts.Health.Middleware("backend", "X-Backend-Service"))
	}

	authHandler := handlers.NewAuthHTTPHandler(opts.Deps, opts.Tokens)
	menuHandler := handlers.NewMenuHTTPHandler(opts.Deps)
	tableHandler := handlers.NewTableHTTPHandler(opts.Deps)
	orderHandler := handlers.NewOrderHTTPHandler(opts.Deps)
	billHandler := handlers.NewBillHTTPHandler(opts.Deps)
	bookingHandler := handlers.NewBookingHTTPHandler(opts.Deps)
	vehicleHandler := handlers.NewVehicleHTTPHandler(opts.Deps)
	housekeepingHandler := handlers.NewHousekeepingHTTPHandler(opts.Deps)
	dashboardHandler := handlers.NewDashboardHTTPHandler(opts.Deps)
	auditHandler := handlers.NewAuditHTTPHandler(opts.AuditReader)

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(opts.Tokens, opts.Deps.Sessions))
	protected.Use(middleware.Audit(opts.AuditRecorder))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		protected.GET("/dashboard/summary", dashboardHandler.Summary)
		protected.GET("/audit", auditHandler.ListEntries)

		menu := protected.Group("/menu-items")
		{
			menu.GET("", menuHandler.ListMenuItems)
			menu.POST("", menuHandler.CreateMenuItem)
			menu.PUT("/:id", menuHandler.UpdateMenuItem)
			menu.DELETE("/:id", menuHandler.DeleteMenuItem)
		}
		protected.GET("/banquet-categories", menuHandler.ListBanquetCategories)

		categories := protected.Group("/categories")
		{
			categories.GET("", menuHandler.ListCategories)
			categories.POST("", menuHandler.CreateCategory)
			categories.PUT("/:id", menuHandler.UpdateCategory)
			categories.DELETE("/:id", menuHandler.DeleteCategory)
		}

		tables := protected.Group("/tables")
		{
			tables.GET("", tableHandler.ListTables)
			tables.POST("", tableHandler.CreateTable)
			tables.PUT("/:id", tableHandler.UpdateTable)
			tables.PATCH("/:id/status", tableHandler.UpdateTableStatus)
			tables.DELETE("/:id", tableHandler.DeleteTable)
		}

		orders := protected.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.GET("/:id/bill-preview", orderHandler.BillPreview)
		}

		bills := protected.Group("/bills")
		{
			bills.GET("", billHandler.ListBills)
			bills.POST("", billHandler.CreateBill)
			bills.POST("/preview", billHandler.PreviewBill)
			bills.GET("/:id", billHandler.GetBill)
			bills.PATCH("/:id/payment", billHandler.RecordPayment)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bookingHandler.ListTableBookings)
			bookings.POST("", bookingHandler.CreateTableBooking)
			bookings.PUT("/:id", bookingHandler.UpdateTableBooking)
			bookings.PATCH("/:id/status", bookingHandler.UpdateTableBookingStatus)
		}

		reservations := protected.Group("/reservations")
		{
			reservations.GET("", bookingHandler.ListReservations)
			reservations.POST("", bookingHandler.CreateReservation)
			reservations.GET("/checked-in", bookingHandler.CheckedInReservations)
			reservations.GET("/grc/new", bookingHandler.NextGRCNo)
			reservations.PATCH("/:id/status", bookingHandler.UpdateReservationStatus)
		}
		protected.GET("/rooms/available", bookingHandler.AvailableRooms)

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.ListVehicles)
			vehicles.GET("/expiring", vehicleHandler.ExpiringDocuments)
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		}

		tasks := protected.Group("/housekeeping/tasks")
		{
			tasks.GET("", housekeepingHandler.ListTasks)
			tasks.POST("", housekeepingHandler.CreateTask)
			tasks.PUT("/:id/status", housekeepingHandler.UpdateTaskStatus)
			tasks.PUT("/:id/assign", housekeepingHandler.AssignTask)
		}
	}

	if opts.Health != nil {
		r.GET("/health", opts.Health.Handler())
		r.GET("/health/detailed", opts.Health.DetailedHandler())
	}

	return r
}
