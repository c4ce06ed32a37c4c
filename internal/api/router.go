package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ferrovale/workspace-booking-backend/internal/auth"
	"github.com/ferrovale/workspace-booking-backend/internal/booking"
	bookingHttp "github.com/ferrovale/workspace-booking-backend/internal/booking/http"
	"github.com/ferrovale/workspace-booking-backend/internal/file"
	fileHttp "github.com/ferrovale/workspace-booking-backend/internal/file/http"
	"github.com/ferrovale/workspace-booking-backend/internal/registry"
	registryHttp "github.com/ferrovale/workspace-booking-backend/internal/registry/http"
	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	resourceHttp "github.com/ferrovale/workspace-booking-backend/internal/resource/http"
	"github.com/ferrovale/workspace-booking-backend/internal/setting"
	settingHttp "github.com/ferrovale/workspace-booking-backend/internal/setting/http"
	"github.com/ferrovale/workspace-booking-backend/internal/slot"
	slotHttp "github.com/ferrovale/workspace-booking-backend/internal/slot/http"
	"github.com/ferrovale/workspace-booking-backend/internal/user"
	userHttp "github.com/ferrovale/workspace-booking-backend/internal/user/http"
)

// Config collects everything the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService     user.Service
	ResService      resource.Service
	SlotService     slot.Service
	BookingService  booking.Service
	RegistryService registry.Service
	SettingService  setting.Service
	FileService     file.Service

	JWTManager *auth.JWTManager
	Logger     *zap.SugaredLogger
}

// NewRouter assembles middleware and registers every module's routes
// under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://localhost:8081",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	resHandler := resourceHttp.NewHandler(cfg.ResService)
	slotHandler := slotHttp.NewHandler(cfg.SlotService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	registryHandler := registryHttp.NewHandler(cfg.RegistryService)
	settingHandler := settingHttp.NewHandler(cfg.SettingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService, cfg.ResService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		resourceHttp.RegisterRoutes(v1, resHandler, authMiddleware, sysAdminMiddleware)
		slotHttp.RegisterRoutes(v1, slotHandler, authMiddleware, sysAdminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		registryHttp.RegisterRoutes(v1, registryHandler, authMiddleware, sysAdminMiddleware)
		settingHttp.RegisterRoutes(v1, settingHandler, authMiddleware, sysAdminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler, authMiddleware, sysAdminMiddleware)
	}

	return r
}
