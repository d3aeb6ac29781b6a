package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/smcs-alumni/alumni-portal/docs"
	"github.com/smcs-alumni/alumni-portal/internal/api/handler"
	"github.com/smcs-alumni/alumni-portal/internal/api/middleware"
	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/service"
	mongodb "github.com/smcs-alumni/alumni-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/smcs-alumni/alumni-portal/internal/infrastructure/db/redis"
	"github.com/smcs-alumni/alumni-portal/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("alumni_portal"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	revoker := redisdb.NewTokenRevoker(rdb)
	authService := service.NewAuthService(authRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())

	announcementRepo := mongodb.NewContentRepository[domain.Announcement](db, service.AnnouncementPolicy.Kind)
	eventRepo := mongodb.NewContentRepository[domain.Event](db, service.EventPolicy.Kind)
	alumniRepo := mongodb.NewContentRepository[domain.FeaturedAlumni](db, service.AlumniPolicy.Kind)

	announcements := handler.NewAnnouncementHandler(service.NewContentService[domain.Announcement](announcementRepo, service.AnnouncementPolicy, log))
	events := handler.NewEventHandler(service.NewContentService[domain.Event](eventRepo, service.EventPolicy, log))
	alumni := handler.NewAlumniHandler(service.NewContentService[domain.FeaturedAlumni](alumniRepo, service.AlumniPolicy, log))

	uploadHandler := handler.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.BaseURL)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Public reads (no auth, cache disabled per handler) ---
	e.GET("/api/announcements", announcements.PublicList)
	e.GET("/api/events", events.PublicList)
	e.GET("/api/alumni", alumni.PublicList)
	e.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	// --- Admin routes, all behind the session gate ---
	admin := e.Group("/api/admin", middleware.Admin(authService))
	registerContentRoutes(admin, "/announcements", announcements)
	registerContentRoutes(admin, "/events", events)
	registerContentRoutes(admin, "/alumni", alumni)
	admin.POST("/upload", uploadHandler.Upload)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// contentRoutes is the slice of the generic handler the router needs; it
// erases the type parameters so one registration helper serves all kinds.
type contentRoutes interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func registerContentRoutes(g *echo.Group, prefix string, h contentRoutes) {
	g.GET(prefix, h.List)
	g.POST(prefix, h.Create)
	g.GET(prefix+"/:id", h.Get)
	g.PUT(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}
