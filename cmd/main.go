package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"autfiles/internal/handlers"
	"autfiles/internal/logger"
	"autfiles/internal/repository"
	"autfiles/internal/server"
	"autfiles/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// load config.yml / environment
	cfgErr := loadConfig()

	// init logger (defaults apply even if config loading failed)
	log := logger.Get(viper.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB; an unreachable store at startup is fatal rather than
	// serving with a broken dependency
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, viper.GetString("jwt.secret"), viper.GetDuration("jwt.expires_in"))
	apiHandler := handlers.NewHandler(services, log, allowedOrigins())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// loadConfig reads an optional configs/config.yml and binds environment
// overrides. Every key has a default, so a missing file is not an error.
func loadConfig() error {
	viper.SetDefault("port", "5000")
	viper.SetDefault("db.path", "app.db")
	viper.SetDefault("jwt.secret", "your-secret-key")
	viper.SetDefault("jwt.expires_in", time.Hour)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("log.level", logger.InfoLevel)

	envKeys := map[string]string{
		"port":                 "PORT",
		"db.path":              "DB_PATH",
		"jwt.secret":           "JWT_SECRET",
		"jwt.expires_in":       "JWT_EXPIRES_IN",
		"cors.allowed_origins": "ALLOWED_ORIGINS",
		"log.level":            "LOG_LEVEL",
	}
	for key, env := range envKeys {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // env and defaults only
		}
		return err
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite store", "path", dbPath)
	return repository.InitDB(dbPath)
}

// allowedOrigins parses the comma-separated cross-origin allow-list.
func allowedOrigins() []string {
	raw := strings.Split(viper.GetString("cors.allowed_origins"), ",")
	origins := make([]string, 0, len(raw))
	for _, o := range raw {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
