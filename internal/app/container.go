package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ferrovale/workspace-booking-backend/internal/api"
	"github.com/ferrovale/workspace-booking-backend/internal/auth"
	"github.com/ferrovale/workspace-booking-backend/internal/booking"
	"github.com/ferrovale/workspace-booking-backend/internal/file"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/storage"
	"github.com/ferrovale/workspace-booking-backend/internal/registry"
	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/setting"
	"github.com/ferrovale/workspace-booking-backend/internal/slot"
	"github.com/ferrovale/workspace-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	DBPool             *pgxpool.Pool
	JWTSecret          string
	JWTTTL             time.Duration
	BcryptCost         int
	StoragePath        string
	DailyCapacityHours int
	Logger             *zap.SugaredLogger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Resource module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo)

	// Slot module
	slotRepo := slot.NewPgxRepository(cfg.DBPool)
	slotService := slot.NewService(slotRepo, resService)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resService, slotService, float64(cfg.DailyCapacityHours))

	// Registry module
	registryRepo := registry.NewPgxRepository(cfg.DBPool)
	registryService := registry.NewService(registryRepo)

	// Setting module
	settingRepo := setting.NewPgxRepository(cfg.DBPool)
	settingService := setting.NewService(settingRepo)

	// File module
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		ResService:      resService,
		SlotService:     slotService,
		BookingService:  bookingService,
		RegistryService: registryService,
		SettingService:  settingService,
		FileService:     fileService,
		JWTManager:      jwtManager,
		Logger:          cfg.Logger,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
