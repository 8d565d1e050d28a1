package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/xvierd/mindminute/internal/adapters/notification"
	"github.com/xvierd/mindminute/internal/adapters/storage"
	"github.com/xvierd/mindminute/internal/config"
	"github.com/xvierd/mindminute/internal/observability"
	"github.com/xvierd/mindminute/internal/ports"
	"github.com/xvierd/mindminute/internal/routine"
	"github.com/xvierd/mindminute/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage  ports.Storage
	catalog  *routine.Catalog
	wellness *services.Wellness
	notifier *notification.Notifier
	config   *config.Config
	logOut   io.Closer
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	cfg, loadErr := config.Load()
	if loadErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}
	app.config = cfg
	if nameFlag != "" {
		app.config.User.Name = nameFlag
	}

	if err := configureLogging(app.config); err != nil {
		return err
	}
	if loadErr != nil {
		observability.Logger().Warn("using default config", "error", loadErr)
	}

	app.notifier = notification.New(&app.config.Notifications)

	// The journal only lives for this process.
	var err error
	app.storage, err = storage.NewMemory()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.catalog = routine.NewCatalog(app.config)
	app.wellness = services.NewWellness(app.storage, app.catalog, ports.SystemClock{})
	app.wellness.Exercises().SetNotifier(app.notifier)

	return nil
}

// configureLogging sends logs to --log-file, or to stderr when --log-level
// is given. Otherwise logs are discarded so they never draw over the UI.
func configureLogging(cfg *config.Config) error {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}

	var w io.Writer = io.Discard
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		app.logOut = f
		w = f
	case logLevel != "":
		w = os.Stderr
	}

	observability.Configure(w, level, cfg.Log.JSON)
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var err error
	if app.storage != nil {
		err = app.storage.Close()
		app.storage = nil
	}
	if app.logOut != nil {
		_ = app.logOut.Close()
		app.logOut = nil
	}
	return err
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
