package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/surveydash/survey-server/internal/api"
	"github.com/surveydash/survey-server/internal/config"
	"github.com/surveydash/survey-server/internal/repository"
	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/internal/service"
	"github.com/surveydash/survey-server/pkg/csvnorm"
	"github.com/surveydash/survey-server/pkg/httpserver"
)

const requestTimeout = 10 * time.Second

type App struct {
	logger     *zap.Logger
	httpServer *httpserver.Server
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	normalizer := csvnorm.New(csvnorm.WithAnchors(cfg.HeaderAnchors...))

	surveyRepo := repository.NewSurveyFileRepository(cfg.DataDir, map[models.SurveyType]string{
		models.SurveyTypeOpening: cfg.OpeningSurveyFile,
		models.SurveyTypeClosing: cfg.ClosingSurveyFile,
	}, normalizer)
	logger.Info("Survey repository initialized", zap.String("data_dir", cfg.DataDir))

	surveyService := service.NewSurveyService(surveyRepo, logger)

	handlers := api.NewHandlers(surveyService, logger, requestTimeout)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(httpserver.RequestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	handlers.RegisterRoutes(router)

	if cfg.StaticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
		logger.Info("Serving static dashboard assets", zap.String("dir", cfg.StaticDir))
	}

	httpServer, err := httpserver.New(
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithLogger(logger),
		httpserver.WithHandler(router),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &App{
		logger:     logger,
		httpServer: httpServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return nil
}
