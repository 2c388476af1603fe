package app

import (
	"errors"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/logging"
	"github.com/ayoisaiah/doze/internal/pathutil"
	"github.com/ayoisaiah/doze/internal/ui"
	"github.com/ayoisaiah/doze/repository"
	"github.com/ayoisaiah/doze/store"
	"github.com/ayoisaiah/doze/tracker"
)

// env is everything a command needs to read or change the sleep log.
type env struct {
	cfg     *config.Config
	tracker *tracker.Tracker
	log     *slog.Logger
	closers []func() error
}

// Close stops the tracker once queued writes finish, then releases the
// database and the log file.
func (e *env) Close() error {
	var errs []error

	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}

	return errors.Join(errs...)
}

// loadConfig reads the config file, asking for the main settings on the
// first interactive run, and applies global flags on top.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if isatty.IsTerminal(os.Stdin.Fd()) {
		opts = append(
			opts,
			config.WithPromptConfig(configPath, pathutil.BackupFilePath()),
		)
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// backupPath returns the configured backup file or the default location.
func backupPath(cfg *config.Config) string {
	if cfg.Backup.Path != "" {
		return cfg.Backup.Path
	}

	return pathutil.BackupFilePath()
}

// openEnv loads the config and builds the tracker on top of the local
// database and the backup file.
func openEnv(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	e := &env{cfg: cfg}

	defer func() {
		if e.tracker == nil {
			_ = e.Close()
		}
	}()

	logger, closeLog, err := logging.New(logging.Options{
		Path:  pathutil.LogFilePath(),
		Level: cfg.LogLevel(),
	})
	if err != nil {
		return nil, err
	}

	e.closers = append(e.closers, closeLog)
	e.log = logger

	slog.SetDefault(logger)

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, err
	}

	e.closers = append(e.closers, db.Close)

	repo, err := repository.New(&repository.Config{
		DB:     db,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	if err = repo.Load(ctx.Context); err != nil {
		return nil, err
	}

	syncer, err := backup.New(&backup.Config{
		Sink:   backup.NewFile(backupPath(cfg)),
		Logger: logger,
		Hook:   cfg.Backup.Hook,
	})
	if err != nil {
		return nil, err
	}

	t, err := tracker.New(&tracker.Config{
		Repository: repo,
		Backup:     syncer,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	e.closers = append(e.closers, func() error {
		t.Close()
		return nil
	})
	e.tracker = t

	return e, nil
}
