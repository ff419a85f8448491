package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Admitra/config"
	"github.com/lshigami/Admitra/database"
	_ "github.com/lshigami/Admitra/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Admitra/internal/controller/admin"
	userctrl "github.com/lshigami/Admitra/internal/controller/user"
	"github.com/lshigami/Admitra/internal/logger"
	"github.com/lshigami/Admitra/internal/middleware"
	"github.com/lshigami/Admitra/internal/model"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/lshigami/Admitra/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Admitra Admission Test API
// @version 1.0
// @description API for a single-attempt, timed multiple-choice admission test with candidate verification and server-side scoring.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewRateLimiter,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSectionRepository,
			repository.NewQuestionRepository,
			repository.NewCandidateRepository,
			repository.NewAttemptRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCandidateService,
			service.NewExamService,
			service.NewResultService,
			func(
				candidateRepo repository.CandidateRepository,
				questionRepo repository.QuestionRepository,
				attemptRepo repository.AttemptRepository,
				responseRepo repository.ResponseRepository,
				db *gorm.DB,
			) service.AttemptService {
				return service.NewAttemptService(candidateRepo, questionRepo, attemptRepo, responseRepo, db)
			},
			service.NewAdminSectionService,
			service.NewAdminQuestionService,
			service.NewAdminCandidateService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewExamController,
			adminctrl.NewAdminController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())

	// Route all request logging through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	limiter *middleware.RateLimiter,
	examCtrl *userctrl.ExamController,
	adminCtrl *adminctrl.AdminController,
) {
	// Public candidate-facing routes (prefixed with /api/v1)
	api := router.Group("/api/v1")
	{
		// Verification and attempt creation carry the anti-enumeration budget.
		api.POST("/candidates/verify", limiter.Middleware(), examCtrl.VerifyCandidate)
		api.POST("/attempts", limiter.Middleware(), examCtrl.StartAttempt)

		api.POST("/attempts/:attempt_id/responses", examCtrl.RecordResponse)
		api.POST("/attempts/:attempt_id/complete", examCtrl.CompleteAttempt)
		api.GET("/attempts/:attempt_id/results", examCtrl.GetResults)

		api.GET("/questions", examCtrl.ListQuestions)
		api.GET("/sections", examCtrl.ListSections)
	}

	// Admin routes (prefixed with /api/v1/admin, JWT + admin role required)
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer))
	{
		adminAPI.POST("/sections", adminCtrl.CreateSection)
		adminAPI.PUT("/sections/:id", adminCtrl.UpdateSection)
		adminAPI.DELETE("/sections/:id", adminCtrl.DeleteSection)

		adminAPI.POST("/questions", adminCtrl.CreateQuestion)
		adminAPI.GET("/questions", adminCtrl.ListQuestions)
		adminAPI.PUT("/questions/:id", adminCtrl.UpdateQuestion)
		adminAPI.DELETE("/questions/:id", adminCtrl.DeleteQuestion)

		adminAPI.POST("/candidates", adminCtrl.CreateCandidate)
		adminAPI.GET("/candidates", adminCtrl.ListCandidates)
		adminAPI.DELETE("/candidates/:id", adminCtrl.DeleteCandidate)

		adminAPI.GET("/attempts", adminCtrl.ListAttempts)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Admitra API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Section{},
		&model.Question{},
		&model.Candidate{},
		&model.Attempt{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
