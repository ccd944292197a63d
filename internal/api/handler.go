package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mindmatehq/mindmate/internal/db"
	"github.com/mindmatehq/mindmate/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db     *gorm.DB
	logger *zap.Logger

	repositories     *db.Repositories
	authService      *services.AuthService
	habitService     *services.HabitService
	wellnessService  *services.WellnessService
	dashboardService *services.DashboardService
	socialService    *services.SocialService
	challengeService *services.ChallengeService
	exportService    *services.ExportService

	validate *validator.Validate
}

func NewHandler(database *gorm.DB, secretKey string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	repositories := db.NewRepositories(database)

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		db:               database,
		logger:           logger,
		repositories:     repositories,
		authService:      services.NewAuthService(repositories.Users, []byte(secretKey)),
		habitService:     services.NewHabitService(repositories.Habits),
		wellnessService:  services.NewWellnessService(repositories.Wellness),
		dashboardService: services.NewDashboardService(repositories.Habits, repositories.Wellness),
		socialService:    services.NewSocialService(repositories.Users),
		challengeService: services.NewChallengeService(repositories.Challenges),
		exportService:    services.NewExportService(repositories.Habits, repositories.Wellness),
		validate:         validate,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
