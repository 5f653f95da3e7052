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

	"github.com/redis/go-redis/v9"

	apicontext "github.com/dtroode/carlisting-server/internal/api/http/context"
	"github.com/dtroode/carlisting-server/internal/api/http/router"
	httpServer "github.com/dtroode/carlisting-server/internal/api/http/server"
	"github.com/dtroode/carlisting-server/internal/config"
	"github.com/dtroode/carlisting-server/internal/logger"
	"github.com/dtroode/carlisting-server/internal/model"
	"github.com/dtroode/carlisting-server/internal/password"
	"github.com/dtroode/carlisting-server/internal/ratelimit"
	"github.com/dtroode/carlisting-server/internal/repository/postgres"
	"github.com/dtroode/carlisting-server/internal/server"
	"github.com/dtroode/carlisting-server/internal/service"
	storage "github.com/dtroode/carlisting-server/internal/storage/minio"
	"github.com/dtroode/carlisting-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// multipart overhead on top of the image bytes
const formOverhead = 1 << 20

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
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	storageClient, err := storage.Connect(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	limiter, closeLimiter := newLoginLimiter(cfg, logger)
	defer closeLimiter()

	hasher, err := password.NewArgon2(password.Params{Time: cfg.KDF.Time, MemKiB: cfg.KDF.MemKiB, Par: cfg.KDF.Par})
	if err != nil {
		logger.Fatal("invalid password hashing parameters", "error", err)
	}
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)
	carRepo := postgres.NewCarRepository(db)

	tokenService := service.NewTokenService(tokenManager, tokenRepo, userRepo, cfg.Tokens.MaxPerUser, logger)
	authService := service.NewAuth(userRepo, hasher, limiter, tokenService, logger)
	carService := service.NewCars(carRepo, storageClient, service.UploadLimits{
		MaxFileSize: cfg.Upload.MaxFileSize,
		MaxFiles:    cfg.Upload.MaxFiles,
	}, logger)

	trustedProxies, err := cfg.HTTP.TrustedProxyNets()
	if err != nil {
		logger.Fatal("invalid HTTP configuration", "error", err)
	}

	r := router.New(authService, carService, tokenService, db, apicontext.NewManager(), router.Options{
		AllowOrigins:   cfg.HTTP.AllowOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:      cfg.Upload.MaxFileSize*int64(cfg.Upload.MaxFiles) + formOverhead,
		TrustedProxies: trustedProxies,
	}, logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

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
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newLoginLimiter returns a Redis backed limiter, or a no-op one when no
// Redis address is configured.
func newLoginLimiter(cfg *config.Config, logger *logger.Logger) (model.LoginLimiter, func()) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR is empty, login throttling is disabled")
		return ratelimit.Noop{}, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := ratelimit.NewRedisLoginLimiter(client, cfg.Login.MaxAttempts, cfg.Login.Window, logger)

	return limiter, func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
