package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skylink-edu/campus-linker/docs" // Import generated swagger docs
	appControllers "github.com/skylink-edu/campus-linker/internal/app/controllers"
	appMigrations "github.com/skylink-edu/campus-linker/internal/app/migrations"
	appRepos "github.com/skylink-edu/campus-linker/internal/app/repositories"
	appRoutes "github.com/skylink-edu/campus-linker/internal/app/routes"
	appServices "github.com/skylink-edu/campus-linker/internal/app/services"
	"github.com/skylink-edu/campus-linker/internal/config"
	"github.com/skylink-edu/campus-linker/internal/db"
	appMiddleware "github.com/skylink-edu/campus-linker/internal/middleware"
	pkgAuth "github.com/skylink-edu/campus-linker/internal/pkg/auth"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
	"github.com/skylink-edu/campus-linker/internal/pkg/logger"
	"github.com/skylink-edu/campus-linker/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	CourseService       appServices.CourseService
	AdmissionService    appServices.AdmissionService
	StudentService      appServices.StudentService
	ExamService         appServices.ExamService
	ResultService       appServices.ResultService
	FeeService          appServices.FeeService
	ActivityService     appServices.ActivityService
	AuthController      *appControllers.AuthController
	CourseController    *appControllers.CourseController
	AdmissionController *appControllers.AdmissionController
	StudentController   *appControllers.StudentController
	ExamController      *appControllers.ExamController
	ResultController    *appControllers.ResultController
	FeeController       *appControllers.FeeController
	ActivityController  *appControllers.ActivityController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// loads the starter data when the database is empty.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed only a fresh database; Apply is not idempotent
	empty, err := seed.IsEmpty(context.Background(), dbPool)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to inspect database for seeding, proceeding anyway...")
	} else if empty {
		if err := seed.Apply(context.Background(), dbPool); err != nil {
			lgr.Error().Err(err).Msg("Failed to apply seed data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.RegistrationRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.AdmissionService = appServices.NewAdmissionService(
		deps.Repos.AdmissionRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.AdmissionRepository,
		database,
		lgr,
	)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository, deps.Repos.CourseRepository)
	deps.ResultService = appServices.NewResultService(
		deps.Repos.ResultRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ExamRepository,
		lgr,
	)
	deps.FeeService = appServices.NewFeeService(
		deps.Repos.FeeRepository,
		deps.Repos.AdmissionRepository,
		lgr,
	)
	deps.ActivityService = appServices.NewActivityService(
		deps.Repos.ActivityRepository,
		deps.Repos.StudentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.AdmissionController = appControllers.NewAdmissionController(deps.AdmissionService)
	deps.StudentController = appControllers.NewStudentController(
		deps.StudentService,
		deps.ResultService,
		deps.ActivityService,
	)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.ResultController = appControllers.NewResultController(deps.ResultService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.ActivityController = appControllers.NewActivityController(deps.ActivityService)

	return deps, nil
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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.AdmissionController,
		deps.StudentController,
		deps.ExamController,
		deps.ResultController,
		deps.FeeController,
		deps.ActivityController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
