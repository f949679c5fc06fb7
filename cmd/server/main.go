package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/hmdvk2-glitch/psi-federal-sub000/api/handler"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/config"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/kvstore"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/infrastructure/monitor"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/middleware"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/router"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/services/lifecycle"
	"github.com/hmdvk2-glitch/psi-federal-sub000/internal/store"
	"github.com/hmdvk2-glitch/psi-federal-sub000/pkg/logger"
	ledgerUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/ledger"
	marketingUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/marketing"
	sessionUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/session"
	vaultUC "github.com/hmdvk2-glitch/psi-federal-sub000/usecase/vault"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("failed to open storage backend", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return backend.Close()
	})

	docStore := store.New(backend, cfg.Storage.Key, zapLogger)
	if _, err := docStore.Load(); err != nil {
		zapLogger.Fatal("failed to initialize document store", zap.Error(err))
	}

	mon := monitor.New(docStore, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	validate := validator.New()

	ledgerService := ledgerUC.New(docStore, validate, zapLogger)
	vaultService := vaultUC.New(docStore, zapLogger)
	marketingService := marketingUC.New(docStore, validate, zapLogger)
	sessionService := sessionUC.New(docStore, backend, sessionUC.Config{
		Secret:       cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		TTL:          cfg.JWT.TTL,
		AdminSlot:    cfg.Storage.AdminSlot,
		CustomerSlot: cfg.Storage.CustomerSlot,
	}, validate, zapLogger)

	if err := sessionService.SeedAdmin(cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		zapLogger.Fatal("failed to seed admin account", zap.Error(err))
	}

	handlers := router.Handlers{
		Auth:          apiHandler.NewAuthHandler(sessionService, zapLogger),
		Admin:         apiHandler.NewAdminHandler(sessionService, zapLogger),
		Customer:      apiHandler.NewCustomerHandler(ledgerService, zapLogger),
		Transaction:   apiHandler.NewTransactionHandler(ledgerService, zapLogger),
		TransferCodes: apiHandler.NewTransferCodesHandler(vaultService, sessionService, zapLogger),
		Marketing:     apiHandler.NewMarketingHandler(marketingService, zapLogger),
		Health:        apiHandler.NewHealthHandler(mon, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	adminMiddleware := middleware.RequireAdmin(zapLogger)
	r := router.New(handlers, authMiddleware, adminMiddleware)

	server := &fasthttp.Server{
		Handler:      middleware.RequestID(zapLogger)(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

func openBackend(cfg config.StorageConfig) (kvstore.Backend, error) {
	switch cfg.Driver {
	case "memory":
		return kvstore.NewMemory(), nil
	case "redis":
		return kvstore.OpenRedis(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	default:
		return kvstore.OpenBolt(cfg.Path, cfg.Bucket)
	}
}
