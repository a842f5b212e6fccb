package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/frahmantamala/inventory-tracker/internal"
	"github.com/frahmantamala/inventory-tracker/internal/activity"
	activityPostgres "github.com/frahmantamala/inventory-tracker/internal/activity/postgres"
	"github.com/frahmantamala/inventory-tracker/internal/auth"
	authPostgres "github.com/frahmantamala/inventory-tracker/internal/auth/postgres"
	"github.com/frahmantamala/inventory-tracker/internal/bootstrap"
	"github.com/frahmantamala/inventory-tracker/internal/department"
	departmentPostgres "github.com/frahmantamala/inventory-tracker/internal/department/postgres"
	"github.com/frahmantamala/inventory-tracker/internal/item"
	itemPostgres "github.com/frahmantamala/inventory-tracker/internal/item/postgres"
	"github.com/frahmantamala/inventory-tracker/internal/transport"
	"github.com/frahmantamala/inventory-tracker/internal/transport/rest"
	"github.com/frahmantamala/inventory-tracker/internal/user"
	userPostgres "github.com/frahmantamala/inventory-tracker/internal/user/postgres"
	"github.com/frahmantamala/inventory-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle the web form endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	baseHandler := transport.NewBaseHandler(deps.Logger)

	authRepo := authPostgres.NewRepository(deps.DB)
	sessionCodec := auth.NewJWTSessionCodec(deps.Config.Security.SessionSecret, deps.Config.Security.SessionTTL)
	authService := auth.NewService(authRepo, sessionCodec)
	authHandler := auth.NewHandler(authService)

	userRepo := userPostgres.NewUserRepository(deps.DB)
	userService := user.NewService(userRepo, deps.Config.Security.BCryptCost, deps.Logger)
	userHandler := user.NewHandler(baseHandler, userService)

	departmentRepo := departmentPostgres.NewDepartmentRepository(deps.DB)
	departmentService := department.NewService(departmentRepo, deps.Logger)
	departmentHandler := department.NewHandler(baseHandler, departmentService)

	itemRepo := itemPostgres.NewItemRepository(deps.DB)
	itemService := item.NewService(itemRepo, deps.Logger)

	activityRepo := activityPostgres.NewActivityRepository(deps.DB)
	activityService := activity.NewService(activityRepo, itemRepo, deps.Logger)
	activityHandler := activity.NewHandler(baseHandler, activityService, itemService)

	bootstrapService := bootstrap.NewService(deps.DB, deps.Config.Security.BCryptCost, deps.Logger)
	bootstrapHandler := bootstrap.NewHandler(baseHandler, bootstrapService)

	sqlDB, err := deps.DB.DB()
	if err != nil {
		deps.Logger.Error("failed to unwrap sql.DB for health checks", "error", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, authHandler, userHandler, departmentHandler, activityHandler, bootstrapHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the GORM handle. Postgres DSNs go through a verified pgx/sqlx
// connection; anything else is treated as a SQLite file for local dev.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
	}

	dsn := cfg.GetDSN()
	if !strings.HasPrefix(dsn, "postgresql://") && !strings.HasPrefix(dsn, "host=") {
		return gorm.Open(sqlite.Open(dsn), gormCfg)
	}

	dbConn, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return gorm.Open(postgres.New(postgres.Config{Conn: dbConn.DB}), gormCfg)
}
