package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/chore-quest/internal/handlers/avatar/v1alpha1"
	avatarorch "github.com/KirkDiggler/chore-quest/internal/orchestrators/avatar"
	"github.com/KirkDiggler/chore-quest/internal/orchestrators/companion"
	"github.com/KirkDiggler/chore-quest/internal/pkg/clock"
	"github.com/KirkDiggler/chore-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/chore-quest/internal/redis"
	avatarconfig "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_config"
	avataritems "github.com/KirkDiggler/chore-quest/internal/repositories/avatar_items"
	companionactivity "github.com/KirkDiggler/chore-quest/internal/repositories/companion_activity"
)

var (
	grpcPort            int
	redisAddr           string
	redisDB             int
	redisPoolSize       int
	redisTLS            bool
	redisSentinelMaster string
	redisSentinelAddrs  []string
	activityRetention   time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Chore Quest avatar gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database number")
	serverCmd.Flags().IntVar(&redisPoolSize, "redis-pool-size", 10, "Redis connection pool size")
	serverCmd.Flags().BoolVar(&redisTLS, "redis-tls", false, "Connect to Redis over TLS")
	serverCmd.Flags().StringVar(&redisSentinelMaster, "redis-sentinel-master", "",
		"Sentinel master name; when set, --redis-sentinel-addrs replaces --redis-addr")
	serverCmd.Flags().StringSliceVar(&redisSentinelAddrs, "redis-sentinel-addrs", nil, "Sentinel addresses")
	serverCmd.Flags().DurationVar(&activityRetention, "activity-retention", companionactivity.DefaultRetention,
		"How long daily companion activity is kept")
}

func newRedisClient() (redis.Client, error) {
	opts := &redis.Options{
		DB:       redisDB,
		PoolSize: redisPoolSize,
		UseTLS:   redisTLS,
	}
	if redisSentinelMaster != "" {
		return redis.NewFailoverClient(redisSentinelMaster, redisSentinelAddrs, opts)
	}
	return redis.NewClient(redisAddr, opts)
}

func newHandler(client redis.Client) (*v1alpha1.Handler, error) {
	configRepo, err := avatarconfig.NewRedisRepository(&avatarconfig.Config{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("rev"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar config repository: %w", err)
	}

	itemsRepo, err := avataritems.NewRedisRepository(&avataritems.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar items repository: %w", err)
	}

	activityRepo, err := companionactivity.NewRedisRepository(&companionactivity.Config{
		Client:    client,
		Retention: activityRetention,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion activity repository: %w", err)
	}

	avatarService, err := avatarorch.NewOrchestrator(&avatarorch.Config{
		ConfigRepo: configRepo,
		ItemsRepo:  itemsRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar orchestrator: %w", err)
	}

	companionService, err := companion.NewOrchestrator(&companion.Config{
		ConfigRepo:   configRepo,
		ActivityRepo: activityRepo,
		Clock:        clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion orchestrator: %w", err)
	}

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AvatarService:    avatarService,
		CompanionService: companionService,
	})
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := newRedisClient()
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}()

	if err := redis.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	avatarHandler, err := newHandler(redisClient)
	if err != nil {
		return fmt.Errorf("failed to create avatar handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := slog.Default()
	recoveryOpt := grpc_recovery.WithRecoveryHandler(recoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterAvatarServiceServer(srv, avatarHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger; the level values line up.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
