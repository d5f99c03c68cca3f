package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizmaster/config"
	"github.com/lshigami/quizmaster/database"
	_ "github.com/lshigami/quizmaster/docs" // Swagger docs
	"github.com/lshigami/quizmaster/internal/controller"
	adminctrl "github.com/lshigami/quizmaster/internal/controller/admin"
	userctrl "github.com/lshigami/quizmaster/internal/controller/user"
	"github.com/lshigami/quizmaster/internal/logger"
	"github.com/lshigami/quizmaster/internal/mailer"
	"github.com/lshigami/quizmaster/internal/middleware"
	"github.com/lshigami/quizmaster/internal/repository"
	"github.com/lshigami/quizmaster/internal/scheduler"
	"github.com/lshigami/quizmaster/internal/service"
	"github.com/lshigami/quizmaster/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title QuizMaster API
// @version 1.0
// @description Quiz management API: catalog authoring, quiz attempts, score exports and scheduled notifications.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			session.NewRedisClient,
			session.NewStore,
			session.NewTokenManager,
			mailer.NewMailer,
			scheduler.NewSlotLocker,
			scheduler.New,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSubjectRepository,
			repository.NewChapterRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewScoreRepository,
			repository.NewReportRepository,
		),

		// Services
		fx.Provide(
			service.NewScoreConverterService,
			service.NewAuthService,
			service.NewSubjectService,
			service.NewChapterService,
			service.NewQuizService,
			service.NewQuestionService,
			service.NewNotificationService,
			service.NewAttemptService,
			service.NewScoreService,
			service.NewSearchService,
			service.NewExportService,
			service.NewGeminiGenerator,
			service.NewQuestionDraftService,
		),

		// HTTP
		fx.Provide(
			middleware.NewAuthenticator,
			middleware.NewGate,
			adminctrl.NewSubjectController,
			adminctrl.NewChapterController,
			adminctrl.NewQuizController,
			adminctrl.NewQuestionController,
			adminctrl.NewReportController,
			userctrl.NewAuthController,
			userctrl.NewQuizController,
		),

		fx.Invoke(
			configureLogging,
			database.AutoMigrate,
			seedAdmin,
			StartScheduler,
			StartServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown finished with errors")
	}
}

func configureLogging(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Format)
}

func seedAdmin(authService service.AuthService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return authService.EnsureAdmin(ctx)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer mounts the API routes and ties the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, handlers controller.Handlers) {
	controller.RegisterRoutes(router, handlers)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizMaster API server starting on port %s", cfg.Server.Port)
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

// StartScheduler registers the recurring jobs and runs the cron loop for the
// lifetime of the app. It is invoked before StartServer so its stop hook runs
// after the server has drained, then waits for running jobs and score emails.
func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, cfg *config.Config, notifications service.NotificationService) error {
	if err := service.RegisterJobs(s, cfg, notifications); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := s.Stop(ctx); err != nil {
				return err
			}
			return notifications.Shutdown(ctx)
		},
	})
	return nil
}
