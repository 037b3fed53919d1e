package routes

import (
	"fmt"

	"capacity-planner-backend/internal/api/handlers"
	"capacity-planner-backend/internal/api/middleware"
	"capacity-planner-backend/internal/auth"
	"capacity-planner-backend/internal/config"
	"capacity-planner-backend/internal/repository"
	"capacity-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize auth configuration and services
	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	handlers.SetErrorDetails(cfg.IsDevelopment())

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize store and services
	store := repository.NewStore(db)
	recompute := service.NewRecomputeCoordinator()
	accessService := service.NewProjectAccessService(store)
	iterationService := service.NewIterationService(store, accessService, recompute, validator)
	memberService := service.NewMemberService(store, accessService, recompute, validator)
	weeklyService := service.NewWeeklyAvailabilityService(store, accessService, cfg.DefaultDaysPerWeek)
	dailyService := service.NewDailyAttendanceService(store, accessService)
	reportService := service.NewCapacityReportService(store, accessService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	iterationHandler := handlers.NewIterationHandler(iterationService)
	memberHandler := handlers.NewMemberHandler(memberService)
	availabilityHandler := handlers.NewAvailabilityHandler(weeklyService, dailyService)
	capacityHandler := handlers.NewCapacityHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		projects := v1.Group("/projects/:projectId")
		{
			projects.POST("/iterations", iterationHandler.CreateIteration)
			projects.GET("/iterations", iterationHandler.ListIterations)
		}

		iterations := v1.Group("/iterations")
		{
			iterations.GET("/:id", iterationHandler.GetIteration)
			iterations.PATCH("/:id", iterationHandler.UpdateIteration)
			iterations.DELETE("/:id", iterationHandler.DeleteIteration)
			iterations.POST("/:id/members", memberHandler.AddMember)
			iterations.GET("/:id/members", memberHandler.ListMembers)
			iterations.PUT("/:id/weekly-availability", availabilityHandler.SaveWeeklyAvailability)
			iterations.GET("/:id/weekly-availability", availabilityHandler.GetWeeklyAvailability)
			iterations.GET("/:id/capacity", capacityHandler.GetCapacitySummary)
			iterations.GET("/:id/reconciliation", capacityHandler.GetReconciliation)
		}

		members := v1.Group("/members")
		{
			members.GET("/:id", memberHandler.GetMember)
			members.PATCH("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.PUT("/:id/weeks/:weekId/attendance", availabilityHandler.SaveDailyAttendance)
		}

		v1.GET("/attendance/:availabilityId", availabilityHandler.GetDailyAttendance)
	}

	return router, nil
}
