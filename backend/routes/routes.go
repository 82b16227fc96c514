package routes

import (
	"time"

	"pandas-platform/backend/config"
	"pandas-platform/backend/controllers"
	_ "pandas-platform/backend/docs"
	"pandas-platform/backend/middleware"
	"pandas-platform/backend/services"
	"pandas-platform/backend/store"
	"pandas-platform/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

const bodyLimit = 10 * 1024 * 1024

// NewApp builds the Fiber app with the global middleware chain.
func NewApp(cfg *config.Config, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Pandas Learning Platform",
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(recover.New())
	app.Use(helmet.New())
	// cors panics on credentials with a wildcard origin
	origin := cfg.FrontendURL
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: origin != "" && origin != "*",
	}))
	app.Use(compress.New())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
			LimitReached: func(c *fiber.Ctx) error {
				return utils.Error(c, fiber.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
			},
		}))
	}

	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) {
	st := store.NewGormStore(db)

	authService := services.NewAuthService(st, cfg, logger)
	catalogService := services.NewCatalogService(st)
	progressService := services.NewProgressService(st, logger)

	authMiddleware := middleware.AuthMiddleware(authService)

	// Health routes
	healthController := controllers.NewHealthController(st, cfg)
	app.Get("/", healthController.Root)
	app.Get("/health", healthController.Health)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")

	// Auth routes
	authController := controllers.NewAuthController(authService, cfg)
	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Get("/me", authMiddleware, authController.Me)
	auth.Post("/logout", authController.Logout)

	// Modules routes
	modulesController := controllers.NewModulesController(catalogService)
	modules := api.Group("/modules")
	modules.Get("/", modulesController.ListModules)
	modules.Get("/:moduleId", modulesController.GetModule)

	// Progress routes
	progressController := controllers.NewProgressController(progressService)
	progress := api.Group("/progress", authMiddleware)
	progress.Post("/", progressController.UpdateProgress)
	progress.Get("/", progressController.GetProgress)
	progress.Get("/:moduleId", progressController.GetModuleProgress)

	// User routes
	userController := controllers.NewUserController()
	users := api.Group("/users", authMiddleware)
	users.Get("/profile", userController.GetProfile)

	app.Use(utils.RouteNotFound)
}
