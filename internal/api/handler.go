package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/solenelark/glowlog/internal/db"
	"github.com/solenelark/glowlog/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories    *db.Repositories
	authService     *services.AuthService
	stepService     *services.StepService
	routineService  *services.RoutineService
	productService  *services.ProductService
	statsService    *services.StatsService
	exportService   *services.ExportService
	recoveryLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:              database,
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    cookieSecure,
		recoveryLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	detector := services.NewConflictDetector(services.DefaultConflictRules())

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.stepService = services.NewStepService(handler.repositories.Steps)
	handler.routineService = services.NewRoutineService(
		handler.repositories.Steps,
		handler.repositories.Steps,
		handler.repositories.Completions,
		handler.location,
	)
	handler.productService = services.NewProductService(
		handler.repositories.Products,
		handler.repositories.Catalog,
		detector,
		handler.location,
	)
	handler.statsService = services.NewStatsService(
		handler.repositories.Steps,
		handler.repositories.Completions,
		handler.location,
	)
	handler.exportService = services.NewExportService(
		handler.repositories.Steps,
		handler.repositories.Completions,
		handler.repositories.Products,
	)
	return handler
}
