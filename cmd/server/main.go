package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	taskv1 "github.com/teooliver/taskstore/api/task/v1"
	userv1 "github.com/teooliver/taskstore/api/user/v1"
	sqliterepo "github.com/teooliver/taskstore/internal/infrastructure/sqlite"
	grpcadapter "github.com/teooliver/taskstore/internal/interface/grpc"
	"github.com/teooliver/taskstore/internal/interface/rest"
	"github.com/teooliver/taskstore/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

//----------------------
// 共通: getenv ヘルパ
//----------------------

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

//----------------------
// Config struct
//----------------------

type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	MetricsAddr string
	DBPath      string

	TraceExporter string

	// gRPC request timeout
	GRPCRequestTimeout time.Duration
}

// env から Config を読み込む。
func loadConfig(logger *zap.Logger) Config {
	// timeout は parse が必要なので、まず文字列で読む
	rawTimeout := getenv("GRPC_REQUEST_TIMEOUT", "3s")
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil {
		// 起動失敗にはせず、warn して安全なデフォルトに落とす
		logger.Warn("invalid GRPC_REQUEST_TIMEOUT, fallback to 3s",
			zap.String("raw", rawTimeout),
			zap.Error(err),
		)
		timeout = 3 * time.Second
	}

	return Config{
		GRPCAddr:           getenv("GRPC_ADDR", ":50051"),
		HTTPAddr:           getenv("HTTP_ADDR", ":3000"),
		MetricsAddr:        getenv("METRICS_ADDR", ":9464"),
		DBPath:             getenv("DB_PATH", "tasks.db"),
		TraceExporter:      getenv("TRACE_EXPORTER", "none"),
		GRPCRequestTimeout: timeout,
	}
}

//----------------------
// main
//----------------------

func main() {
	// ---- Logger ----
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}
	defer logger.Sync()

	// ---- Config 読み込み ----
	cfg := loadConfig(logger)
	logger.Info("loaded config",
		zap.String("grpc_addr", cfg.GRPCAddr),
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("metrics_addr", cfg.MetricsAddr),
		zap.String("db_path", cfg.DBPath),
		zap.String("trace_exporter", cfg.TraceExporter),
		zap.Duration("grpc_request_timeout", cfg.GRPCRequestTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- Tracing ----
	shutdownTracer, err := telemetry.Setup(ctx, "taskstore", cfg.TraceExporter)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("failed to shutdown tracer", zap.Error(err))
		}
	}()

	// ---- DB 接続 & マイグレーション ----
	db, err := sqliterepo.Open(ctx, sqliterepo.Config{Path: cfg.DBPath})
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	defer db.Close()

	if err := sqliterepo.Migrate(db); err != nil {
		logger.Fatal("failed to migrate db", zap.Error(err))
	}

	logger.Info("connected to SQLite", zap.String("path", cfg.DBPath))

	// ---- Repository ----
	// 接続プールはここで一度だけ作り、Repository に注入する。
	// これ以外のコンポーネントが db に触ることはない。
	taskRepo := sqliterepo.NewTaskRepository(db, logger)
	userRepo := sqliterepo.NewUserRepository(db, logger)

	// ---- gRPC Server + Interceptor ----
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		grpcadapter.NewRecoveryUnaryInterceptor(logger),
		grpcadapter.NewTimeoutUnaryInterceptor(logger, cfg.GRPCRequestTimeout),
		grpcadapter.NewLoggingUnaryInterceptor(logger),
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)

	// ---- Health & Reflection ----
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	// ---- Task / User Service ----
	taskv1.RegisterTaskServiceServer(grpcServer, grpcadapter.NewTaskHandler(taskRepo))
	userv1.RegisterUserServiceServer(grpcServer, grpcadapter.NewUserHandler(userRepo))

	// ---- REST サーバ ----
	restSrv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      rest.NewRouter(taskRepo, userRepo, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		logger.Info("REST server started", zap.String("addr", cfg.HTTPAddr))
		if err := restSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("REST server error", zap.Error(err))
			stop()
		}
	}()

	// ---- metrics HTTP サーバ (/metrics) ----
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		logger.Info("metrics server started", zap.String("addr", cfg.MetricsAddr))

		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	// ---- gRPC サーバ listen ----
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server started", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server exited with error", zap.Error(err))
			stop()
		}
	}()

	// ---- Shutdown ----
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := restSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shutdown REST server", zap.Error(err))
	}
	grpcServer.GracefulStop()

	logger.Info("shutdown complete")
}
