package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/companion"
	"carecompanion.app/companion-service/pkg/config"
	companionGrpc "carecompanion.app/companion-service/pkg/grpc"
	companionHttp "carecompanion.app/companion-service/pkg/http"
	"carecompanion.app/companion-service/pkg/notify"
	"carecompanion.app/companion-service/pkg/seed"
	"carecompanion.app/companion-service/pkg/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger := common.GetLogger()
	defer common.SyncLogger()

	kv, closeKV, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open key-value backend: ", err)
	}
	defer closeKV()

	deliverer, err := notify.BuildDeliverer(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up notification delivery: ", err)
	}

	family, err := notify.ParseFamily(cfg.NotifyPlatform)
	if err != nil {
		log.Fatal(err)
	}

	loc := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	platform := notify.NewLocalPlatform(deliverer, loc)
	platform.Start()
	defer platform.Stop()

	scheduler := notify.NewScheduler(platform, family, notify.WithClock(clock))
	core := companion.New(kv, scheduler, clock)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL, kv)

	if count, err := core.RearmAll(ctx); err != nil {
		logger.Error("Failed to re-arm stored reminders", zap.Error(err))
	} else {
		logger.Info("Stored reminders re-armed", zap.Int("count", count))
	}

	if cfg.SeedDemo {
		if err := seed.Load(ctx, core, cfg.SeedPassword); err != nil {
			log.Fatal("Failed to load demo data: ", err)
		}
	}

	limiterStore := companion.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
	limiterInfo := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	if cfg.GRPCHostPort != "" {
		reminderServer := &companionGrpc.ReminderServer{
			Companion:        core,
			Auth:             issuer,
			RateLimiterStore: limiterStore,
		}
		s := grpc.NewServer(reminderServer.ServerOptions()...)
		companionGrpc.RegisterReminderServiceServer(s, reminderServer)
		logger.Info("gRPC server created with:", limiterInfo)

		listener, err := net.Listen("tcp", cfg.GRPCHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("start gRPC server on " + cfg.GRPCHostPort)
			if err := s.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
				stop()
			}
		}()
		defer s.GracefulStop()
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &companionHttp.RestfulServer{
		Server:           gin.Default(),
		Companion:        core,
		Auth:             issuer,
		RateLimiterStore: limiterStore,
		CorsOrigins:      cfg.CorsOrigins,
	}
	rs.Setup()
	logger.Info("http server created with:", limiterInfo)

	httpServer := &http.Server{
		Addr:              cfg.HTTPHostPort,
		Handler:           rs.Server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed to serve", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
