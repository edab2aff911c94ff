package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shoplane/admin-backend/internal/api"
	"github.com/shoplane/admin-backend/internal/auth"
	"github.com/shoplane/admin-backend/internal/category"
	"github.com/shoplane/admin-backend/internal/dashboard"
	"github.com/shoplane/admin-backend/internal/order"
	"github.com/shoplane/admin-backend/internal/pkg/storage"
	"github.com/shoplane/admin-backend/internal/product"
	"github.com/shoplane/admin-backend/internal/staff"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	AllowedOrigins string
	DBPool         *pgxpool.Pool
	JWTSecret      string
	SessionTTL     time.Duration
	BcryptCost     int
	UploadDir      string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload store: %w", err)
	}

	// Staff Module
	staffRepo := staff.NewPgxRepository(cfg.DBPool)
	staffService := staff.NewService(staffRepo, passwordHasher)

	// Category Module
	catRepo := category.NewPgxRepository(cfg.DBPool)
	catService := category.NewService(catRepo)

	// Product Module
	prodRepo := product.NewPgxRepository(cfg.DBPool)
	prodService := product.NewService(prodRepo, catService, store)

	// Order Module
	orderRepo := order.NewPgxRepository(cfg.DBPool)
	orderService := order.NewService(orderRepo, prodService)

	// Dashboard Module
	dashRepo := dashboard.NewPgxRepository(cfg.DBPool)
	dashService := dashboard.NewService(dashRepo, orderService, prodService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:     cfg.IsProduction,
		AllowedOrigins:   cfg.AllowedOrigins,
		StaffService:     staffService,
		CategoryService:  catService,
		ProductService:   prodService,
		OrderService:     orderService,
		DashboardService: dashService,
		JWTManager:       jwtManager,
		UploadDir:        cfg.UploadDir,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
