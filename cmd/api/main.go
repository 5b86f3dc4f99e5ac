package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskboard/internal/adapter/db"
	httpadapter "taskboard/internal/adapter/http"
	"taskboard/internal/adapter/http/handlers"
	httpmiddleware "taskboard/internal/adapter/http/middleware"
	"taskboard/internal/app/service"
	"taskboard/internal/config"
	"taskboard/pkg/token"
	"taskboard/pkg/translator"
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

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	projectRepository := dbadapter.NewProjectRepository(db)
	membershipRepository := dbadapter.NewMembershipRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepository, tokens)
	projectService := service.NewProjectService(projectRepository)
	membershipService := service.NewMembershipService(membershipRepository, userRepository)
	taskService := service.NewTaskService(taskRepository, membershipRepository, userRepository)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(db),
		Users:       handlers.NewUserHandler(userService),
		Projects:    handlers.NewProjectHandler(projectService),
		Memberships: handlers.NewMembershipHandler(membershipService),
		Tasks:       handlers.NewTaskHandler(taskService),
	}, httpmiddleware.AuthMiddleware(tokens, userService))

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
