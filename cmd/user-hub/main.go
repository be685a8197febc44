package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-hub/config"
	"user-hub/internal/adapter/gateway"
	adapterhandler "user-hub/internal/adapter/handler"
	"user-hub/internal/driver/postgres"
	"user-hub/internal/infrastructure/password"
	"user-hub/internal/infrastructure/stream"
	infratoken "user-hub/internal/infrastructure/token"
	"user-hub/internal/usecase"
	appmiddleware "user-hub/middleware"
	"user-hub/utils/logger"
	"user-hub/utils/otel"
	"user-hub/utils/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

const albumsTimeout = 5 * time.Second

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
	}

	// Initialize structured logger
	log := logger.Init(cfg.LogLevel, otelCfg.Enabled)

	slog.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"token_ttl", cfg.TokenTTL,
		"albums_base_url", cfg.AlbumsBaseURL)

	// Infrastructure
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	codec, err := infratoken.NewCodec(cfg.TokenSecret, cfg.TokenTTL, log)
	if err != nil {
		slog.ErrorContext(ctx, "failed to initialize token codec", "error", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool, log)
	hub := stream.NewHub()
	hasher := password.NewBcryptHasher()
	albums := gateway.NewAlbumGateway(cfg.AlbumsBaseURL, albumsTimeout)

	// Usecases
	createUC := usecase.NewCreateUser(users, hasher, hub, log)
	loginUC := usecase.NewLogin(users, hasher, codec, log)
	getUC := usecase.NewGetUser(users, albums, log)
	listUC := usecase.NewListUsers(users)
	streamUC := usecase.NewStreamUsers(hub)

	// Handlers
	validate := validator.New()
	userHandler := adapterhandler.NewUserHandler(createUC, getUC, listUC, validate)
	authHandler := adapterhandler.NewAuthHandler(loginUC, validate)
	streamHandler := adapterhandler.NewStreamHandler(streamUC, log)
	healthHandler := adapterhandler.NewHealthHandler(pool)

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Security middleware
	e.Use(appmiddleware.SecurityHeaders())

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
	}

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Token check runs on every route; requests without credentials pass
	// through anonymous and the per-route guards decide what that means.
	e.Use(appmiddleware.Authenticate(codec))

	loginRL := appmiddleware.NewRateLimiter(30.0/60.0, 5) // 30 req/min

	// Whitelisted routes
	e.POST("/login", authHandler.HandleLogin, loginRL.Middleware())
	e.POST("/users", userHandler.HandleCreate)
	e.GET("/users/stream", streamHandler.Handle)
	e.GET("/health", healthHandler.Handle)

	// Routes that require an authenticated caller
	e.GET("/users", userHandler.HandleList, appmiddleware.RequireIdentity())
	e.GET("/users/:id", userHandler.HandleGet, appmiddleware.RequireIdentity())

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting user-hub server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
