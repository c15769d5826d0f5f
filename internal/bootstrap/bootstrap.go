package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursescheduler/internal/app/controllers"
	appRoutes "github.com/yigit/coursescheduler/internal/app/routes"
	appServices "github.com/yigit/coursescheduler/internal/app/services"
	"github.com/yigit/coursescheduler/internal/config"
	appMiddleware "github.com/yigit/coursescheduler/internal/middleware"
	"github.com/yigit/coursescheduler/internal/pkg/logger"
)

// DefaultConfigPath is where the configuration file is looked up
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.PrettyLogs(),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.CourseService = appServices.NewCourseService(cfg.Greeting.Runtime, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	lgr.Info().Str("runtime", cfg.Greeting.Runtime).Msg("Course scheduler module loaded successfully")
	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.CourseController)

	return router
}
