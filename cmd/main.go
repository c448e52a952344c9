// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"gridapp/internal/app"
	"gridapp/internal/client"
	"gridapp/internal/config"
	"gridapp/internal/handlers"
	"gridapp/internal/middleware"
	"gridapp/internal/repository"
	"gridapp/internal/store"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// ローカルストア (GORM + SQLite) を初期化
	db, err := store.NewDB(config.Cfg.Store.Path, logger)
	if err != nil {
		slog.Error("Error initializing local store", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing local store", slog.Any("error", err))
		} else {
			slog.Info("Local store closed.")
		}
	}()

	// Dependency Injection
	cacheTTL := time.Duration(config.Cfg.Cache.TTLMinutes) * time.Minute
	localStore := store.NewStore(db, cacheTTL, logger)

	remoteTimeout := time.Duration(config.Cfg.Remote.TimeoutSeconds) * time.Second
	remoteClient := client.New(config.Cfg.Remote.URL, remoteTimeout, logger)

	repo := repository.NewTopicRepository(remoteClient, localStore, logger)
	application := app.New(repo, localStore, logger)

	topicHandler := handlers.NewTopicHandler(application, logger)
	studyHandler := handlers.NewStudyHandler(application, logger)
	folderHandler := handlers.NewFolderHandler(application, logger)
	stateHandler := handlers.NewStateHandler(application, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// アプリ状態と設定
		r.Get("/state", stateHandler.GetState)
		r.Post("/state/topic", stateHandler.SelectTopic)
		r.Post("/state/view", stateHandler.SetView)
		r.Post("/state/refresh", stateHandler.RefreshCurrentTopic)
		r.Post("/state/clear-error", stateHandler.ClearError)
		r.Get("/settings", stateHandler.GetSettings)
		r.Patch("/settings", stateHandler.UpdateSettings)
		r.Post("/settings/dark-mode", stateHandler.ToggleDarkMode)

		// トピックとカード
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topicHandler.GetTopics)
			r.Post("/", topicHandler.CreateTopic)
			r.Post("/sync", topicHandler.SyncData)
			r.Route("/{topicName}", func(r chi.Router) {
				r.Delete("/", topicHandler.DeleteTopic)
				r.Get("/cards", topicHandler.GetCards)
				r.Post("/cards", topicHandler.AddCard)
				r.Put("/cards/{rowId}", topicHandler.UpdateCard)
				r.Delete("/cards/{rowId}", topicHandler.DeleteCard)
				r.Get("/config", topicHandler.GetTopicConfig)
				r.Put("/config", topicHandler.UpdateTopicConfig)
			})
		})
		r.Post("/images", topicHandler.UploadImage)

		// 学習セッション
		r.Route("/study", func(r chi.Router) {
			r.Post("/start", studyHandler.Start)
			r.Get("/state", studyHandler.State)
			r.Post("/next", studyHandler.Next)
			r.Post("/previous", studyHandler.Previous)
			r.Post("/goto", studyHandler.GoTo)
			r.Post("/reveal", studyHandler.Reveal)
			r.Post("/reveal-all", studyHandler.RevealAll)
			r.Post("/reset-card", studyHandler.ResetCard)
			r.Post("/reset", studyHandler.Reset)
		})

		// フォルダと検索
		r.Route("/folders", func(r chi.Router) {
			r.Get("/", folderHandler.GetFolders)
			r.Post("/", folderHandler.CreateFolder)
			r.Post("/select", folderHandler.SelectFolder)
			r.Post("/assign", folderHandler.AssignTopic)
			r.Post("/unassign", folderHandler.UnassignTopic)
			r.Post("/search", folderHandler.Search)
			r.Get("/search/results", folderHandler.SearchResults)
			r.Delete("/{folderId}", folderHandler.DeleteFolder)
		})
	})

	// Health Check
	r.Get("/health", stateHandler.Health)

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
