package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"google.golang.org/grpc"

	"hotelops-dashboard/config"
	"hotelops-dashboard/internal/alerts"
	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/database"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/gateway"
	"hotelops-dashboard/internal/gateway/handlers"
	"hotelops-dashboard/internal/gateway/middleware"
	"hotelops-dashboard/internal/health"
	"hotelops-dashboard/internal/session"
	"hotelops-dashboard/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	checker := health.NewChecker()
	checker.Require("backend", api.Ping)

	deps := handlers.Deps{
		API:      api,
		Sessions: session.NewMemoryStore(),
		Cache:    cache.New(nil),
		Events:   events.Noop{},
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = config.NewRedisClient(cfg.Redis)
		defer redisClient.Close()

		deps.Sessions = session.NewRedisStore(redisClient)
		deps.Cache = cache.New(redisClient)
		deps.Events = events.NewRedisPublisher(redisClient)
		checker.Optional("redis", func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	} else {
		log.Println("REDIS_HOST not set, using in-memory sessions without list cache")
	}

	opts := gateway.Options{
		Deps:                 deps,
		Tokens:               utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Health:               checker,
		AllowedOrigins:       cfg.Server.AllowedOrigins,
		RateLimit:            cfg.RateLimit,
		SlowRequestThreshold: cfg.Server.SlowRequestThreshold,
	}

	if cfg.DB.AuditDSN != "" {
		db, err := database.NewConnection(cfg.DB.AuditDSN)
		if err != nil {
			log.Fatalf("Failed to connect to audit db: %v", err)
		}
		if err := database.MigrateAuditDB(db); err != nil {
			log.Fatalf("Failed to migrate audit database: %v", err)
		}
		auditLog := database.NewAuditLog(db)
		opts.AuditRecorder = auditLog
		opts.AuditReader = auditLog
		checker.Optional("audit_db", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
	} else {
		log.Println("AUDIT_DSN not set, audit log disabled")
	}

	go checker.Run(ctx, 30*time.Second)

	grpcServer := grpc.NewServer()
	checker.Register(grpcServer)
	go serveGRPC(grpcServer, ":"+cfg.Server.GRPCPort)

	// Without a service token the scheduler could not read vehicles.
	if cfg.Backend.ServiceToken != "" {
		expiry := alerts.NewExpiryService(api, notifier(cfg.Alerts), deps.Events, cfg.Backend.ServiceToken, cfg.Alerts.WindowDays)
		if err := expiry.Start(cfg.Alerts.Schedule); err != nil {
			log.Fatalf("Failed to start vehicle alerts: %v", err)
		}
		defer expiry.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           gateway.NewRouter(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		grpcServer.GracefulStop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown: %v", err)
		}
	}()

	log.Printf("🏨 Dashboard gateway on :%s (backend %s)", cfg.Server.Port, api.BaseURL())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Gateway stopped")
}

func serveGRPC(s *grpc.Server, addr string) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	log.Printf("gRPC health listening on %s", addr)
	if err := s.Serve(lis); err != nil {
		log.Printf("gRPC server stopped: %v", err)
	}
}

func notifier(cfg config.AlertsConfig) alerts.Notifier {
	if cfg.SMSEnabled() {
		return alerts.NewSMSNotifier(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, cfg.RecipientSMS)
	}
	return alerts.LogNotifier{}
}

// AuditLog backs both the audit middleware and the audit screen.
var (
	_ middleware.AuditRecorder = (*database.AuditLog)(nil)
	_ handlers.AuditReader     = (*database.AuditLog)(nil)
)
