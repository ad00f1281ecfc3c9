package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/edeboer/warehoused/internal/api/http/handler"
	"github.com/edeboer/warehoused/internal/api/http/middleware"
	"github.com/edeboer/warehoused/internal/api/http/router"
	"github.com/edeboer/warehoused/internal/auth"
	"github.com/edeboer/warehoused/internal/config"
	"github.com/edeboer/warehoused/internal/logger"
	"github.com/edeboer/warehoused/internal/model"
	"github.com/edeboer/warehoused/internal/repository/postgres"
	"github.com/edeboer/warehoused/internal/server"
	"github.com/edeboer/warehoused/internal/service"
	"github.com/edeboer/warehoused/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	apiUserRepo := postgres.NewAPIUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	resetTokens := token.NewReset(cfg.Auth.ResetSecret)
	accountService := service.NewAccount(userRepo, sessionRepo, resetTokens, logger)
	apiKeyService := service.NewAPIKey(apiUserRepo, logger)

	newRegistry := func() *auth.Registry {
		return auth.NewDefaultRegistry(userRepo, sessionRepo, apiUserRepo)
	}
	authenticate := middleware.NewAuthenticate(newRegistry, cfg.Auth.CookieName, logger)

	httpServer := registerHTTPServer(
		logger,
		accountService,
		apiKeyService,
		authenticate,
		cfg.Auth.CookieName,
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	accountService *service.Account,
	apiKeyService *service.APIKey,
	authenticate *middleware.Authenticate,
	cookieName string,
	addr string,
) *server.HTTPServer {
	authHandler := handler.NewAuth(accountService, cookieName, logger)
	adminHandler := handler.NewAdmin(accountService, apiKeyService, logger)
	apiHandler := handler.NewAPI(logger)

	r := router.New(authHandler, adminHandler, apiHandler, authenticate, logger)

	return server.NewHTTPServer(r.Register(), addr)
}
