package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/category"
	catHttp "github.com/shoplane/admin-backend/internal/category/http"
	"github.com/shoplane/admin-backend/internal/dashboard"
	dashHttp "github.com/shoplane/admin-backend/internal/dashboard/http"
	"github.com/shoplane/admin-backend/internal/order"
	orderHttp "github.com/shoplane/admin-backend/internal/order/http"
	"github.com/shoplane/admin-backend/internal/product"
	prodHttp "github.com/shoplane/admin-backend/internal/product/http"
	"github.com/shoplane/admin-backend/internal/staff"
	staffHttp "github.com/shoplane/admin-backend/internal/staff/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction     bool
	AllowedOrigins   string // comma-separated; empty means localhost dev origins
	StaffService     staff.Service
	CategoryService  category.Service
	ProductService   product.Service
	OrderService     order.Service
	DashboardService dashboard.Service
	JWTManager       *auth.JWTManager
	UploadDir        string // served under /uploads when non-empty
}

// NewRouter assembles middleware and registers the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// sessionMiddleware: resolves the principal from the session cookie or bearer token.
	sessionMiddleware := auth.SessionRequired(cfg.JWTManager)
	// Role gates, checked against the principal store on every request.
	adminOnly := RequireRole(cfg.StaffService, staff.RoleAdmin)
	managerUp := RequireRole(cfg.StaffService, staff.RoleAdmin, staff.RoleManager)
	vendorUp := RequireRole(cfg.StaffService, staff.RoleAdmin, staff.RoleManager, staff.RoleVendor)

	authHandler := NewAuthHandler(cfg.StaffService, cfg.JWTManager, cfg.IsProduction)
	staffHandler := staffHttp.NewHandler(cfg.StaffService)
	catHandler := catHttp.NewHandler(cfg.CategoryService)
	prodHandler := prodHttp.NewHandler(cfg.ProductService)
	orderHandler := orderHttp.NewHandler(cfg.OrderService)
	dashHandler := dashHttp.NewHandler(cfg.DashboardService)

	apiGroup := r.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", sessionMiddleware, authHandler.Logout)
		authGroup.GET("/me", sessionMiddleware, authHandler.Me)

		staffHttp.RegisterRoutes(apiGroup, staffHandler, sessionMiddleware, adminOnly)
		catHttp.RegisterRoutes(apiGroup, catHandler, sessionMiddleware, managerUp)
		prodHttp.RegisterRoutes(apiGroup, prodHandler, sessionMiddleware, vendorUp, managerUp)
		orderHttp.RegisterRoutes(apiGroup, orderHandler, sessionMiddleware, managerUp, adminOnly)
		dashHttp.RegisterRoutes(apiGroup, dashHandler, sessionMiddleware, managerUp)
	}

	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	return r
}
