package main

import (
	"context"
	"net/http"
	"os"

	"taskboard/pkg/graceful"
	"taskboard/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/cors"
	"go.uber.org/zap"

	authadapter "taskboard/internal/adapter/auth"
	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	httpmiddleware "taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/memory"
	"taskboard/internal/app/service"
	"taskboard/internal/config"
	"taskboard/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Fatal("failed to load translations", zap.Error(err))
	}

	db, taskRepository, userRepository, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database connection", zap.Error(err))
			}
		}()
	}

	sessions := authadapter.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepository, sessions)
	taskService := service.NewTaskService(taskRepository)

	gin.SetMode(os.Getenv(gin.EnvGinMode))
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, cfg.DbDriver),
		Docs:   handlers.NewDocsHandler(appVersion()),
		Auth:   handlers.NewAuthHandler(authService),
		Task:   handlers.NewTaskHandler(taskService),
	}, httpmiddleware.Authenticate(authService))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept-Language"},
		AllowCredentials: true,
	}).Handler(r)

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      corsHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("starting server", zap.String("addr", server.Addr), zap.String("driver", cfg.DbDriver))
	if err := graceful.ListenAndServe(context.Background(), server, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
	logger.Info("server stopped")
}

// openStore returns a nil *sqlx.DB for the in-memory driver.
func openStore(ctx context.Context, cfg *config.Config) (*sqlx.DB, ports.TaskRepository, ports.UserRepository, error) {
	if cfg.DbDriver == config.DriverMemory {
		return nil, memory.NewTaskRepository(), memory.NewUserRepository(), nil
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := dbadapter.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}
	return db, dbadapter.NewTaskRepository(db), dbadapter.NewUserRepository(db), nil
}

func appVersion() string {
	if version := os.Getenv("APP_VERSION"); version != "" {
		return version
	}
	return "dev"
}
