package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/LrenceLapating/Eunoiaa-sub002/config"
	"github.com/LrenceLapating/Eunoiaa-sub002/database"
	_ "github.com/LrenceLapating/Eunoiaa-sub002/docs" // Swagger docs
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/controller"
	adminctrl "github.com/LrenceLapating/Eunoiaa-sub002/internal/controller/admin"
	reportctrl "github.com/LrenceLapating/Eunoiaa-sub002/internal/controller/report"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/logger"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/repository/memory"
	"github.com/LrenceLapating/Eunoiaa-sub002/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title EUNOIA College Scores API
// @version 1.0
// @description Aggregates Ryff well-being assessment results into per-college dimension scores and risk levels.
// @contact.name EUNOIA Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"), strings.EqualFold(os.Getenv("LOG_PRETTY"), "true"))

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewRepositories,
			NewGinEngine,
		),

		fx.Provide(
			service.NewCompletionService,
			service.NewCollegeScoreService,
		),

		fx.Provide(
			adminctrl.NewCollegeScoreController,
			reportctrl.NewCollegeScoreController,
		),

		fx.Invoke(func(cfg *config.Config) { logger.Init(cfg.Log.Level, cfg.Log.Pretty) }),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

// Repositories groups the store implementations selected by DATABASE_DRIVER.
type Repositories struct {
	fx.Out

	Students        repository.StudentRepository
	BulkAssessments repository.BulkAssessmentRepository
	Assignments     repository.AssignmentRepository
	Submissions     repository.SubmissionRepository
	CollegeScores   repository.CollegeScoreRepository
}

func NewRepositories(lc fx.Lifecycle, cfg *config.Config) (Repositories, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("Using in-memory store; data is lost on restart")
		db := memory.Open()
		return Repositories{
			Students:        memory.NewStudentRepository(db),
			BulkAssessments: memory.NewBulkAssessmentRepository(db),
			Assignments:     memory.NewAssignmentRepository(db),
			Submissions:     memory.NewSubmissionRepository(db),
			CollegeScores:   memory.NewCollegeScoreRepository(db),
		}, nil
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return Repositories{}, err
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return Repositories{}, err
		}
	}
	lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return closeDB(db) }})

	return Repositories{
		Students:        repository.NewStudentRepository(db),
		BulkAssessments: repository.NewBulkAssessmentRepository(db),
		Assignments:     repository.NewAssignmentRepository(db),
		Submissions:     repository.NewSubmissionRepository(db),
		CollegeScores:   repository.NewCollegeScoreRepository(db),
	}, nil
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	log.Info().Msg("Closing database connections")
	return sqlDB.Close()
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

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

	allowOrigins := cfg.CORS.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(allowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", controller.Health)

	return r
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminScoreCtrl *adminctrl.CollegeScoreController,
	scoreCtrl *reportctrl.CollegeScoreController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		scores := adminAPIGroup.Group("/college-scores")
		scores.POST("/compute", adminScoreCtrl.ComputeCollegeScores)
		scores.POST("/backfill", adminScoreCtrl.Backfill)
		scores.POST("/assignments/:assignment_id/recompute", adminScoreCtrl.RecomputeForAssignment)
	}

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.GET("/college-scores", scoreCtrl.GetCollegeScores)
		apiGroup.GET("/college-scores/completion", scoreCtrl.GetCompletion)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EUNOIA college scores server starting on port %s", cfg.Server.Port)
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
