package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/repository"
	"portfolio_backend/internal/repository/db"
	"portfolio_backend/internal/server"
	"portfolio_backend/internal/service"

	"github.com/spf13/viper"
)

const defaultSweepTick = 10 * time.Minute

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, viper.GetDuration("session.ttl"))
	apiHandler := handlers.NewHandler(services, log)

	// seed the admin account; users are never created through the API
	if err := seedAdmin(services, log); err != nil {
		log.Fatalw("failed to seed admin user", "err", err)
	}

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start expired-session sweeper
	go services.SessionSweeper.Run(ctx, sweepTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "portfolio.db")
		dbPath = "portfolio.db"
	}
	return db.InitDB(dbPath)
}

// seedAdmin provisions the admin account from config. Idempotent; an
// existing account is left untouched.
func seedAdmin(services *service.Service, log *logger.Logger) error {
	username := viper.GetString("admin.username")
	password := viper.GetString("admin.password")
	if username == "" {
		log.Infow("admin.username not set in config; skipping admin seed")
		return nil
	}
	return services.Authorization.EnsureAdmin(context.Background(), username, password)
}

func sweepTick() time.Duration {
	if d := viper.GetDuration("session.sweep_interval"); d > 0 {
		return d
	}
	return defaultSweepTick
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
