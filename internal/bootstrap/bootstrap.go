package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/andresq/gradebook/internal/app/controllers"
	appMigrations "github.com/andresq/gradebook/internal/app/migrations"
	appRepos "github.com/andresq/gradebook/internal/app/repositories"
	appRoutes "github.com/andresq/gradebook/internal/app/routes"
	appServices "github.com/andresq/gradebook/internal/app/services"
	"github.com/andresq/gradebook/internal/config"
	"github.com/andresq/gradebook/internal/db"
	appMiddleware "github.com/andresq/gradebook/internal/middleware"
	"github.com/andresq/gradebook/internal/pkg/logger"
	"github.com/andresq/gradebook/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	UserService       appServices.UserService
	SubjectService    appServices.SubjectService
	StudentService    appServices.StudentService
	GradeService      appServices.GradeService
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	SubjectController *appControllers.SubjectController
	StudentController *appControllers.StudentController
	GradeController   *appControllers.GradeController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, ensures the schema and
// seeds the default admin. Schema and seed failures are logged but do not
// abort startup; the pool itself must be healthy.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Ensuring database schema...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure database schema, proceeding anyway...")
	}

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.GradeController = appControllers.NewGradeController(deps.GradeService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())
	router.Use(corsMiddleware(cfg))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.SubjectController,
		deps.StudentController,
		deps.GradeController,
	)

	return router
}

// corsMiddleware allows the configured frontend origin, or any origin when
// none is configured.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	if cfg.CORS.AllowedOrigin == "" || cfg.CORS.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORS.AllowedOrigin}
	}

	return cors.New(corsConfig)
}
