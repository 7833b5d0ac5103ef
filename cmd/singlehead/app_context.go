package main

import (
	"os"

	"golang.org/x/term"

	"github.com/singlehead/singlehead/internal/config"
	"github.com/singlehead/singlehead/internal/logger"
	"github.com/singlehead/singlehead/internal/niri"
	"github.com/singlehead/singlehead/internal/state"
)

// AppContext bundles the services a command needs, resolved once per
// invocation from flags, the optional config file and the environment.
type AppContext struct {
	Log    *logger.Logger
	Client niri.Client
	Store  *state.Store
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	log, err := buildLogger(flags, cfg)
	if err != nil {
		return nil, err
	}

	socketPath, err := niri.SocketPath(firstNonEmpty(flags.socketPath, cfg.Socket))
	if err != nil {
		return nil, err
	}

	statePath := firstNonEmpty(flags.statePath, cfg.StateFile)
	if statePath == "" {
		statePath, err = state.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return &AppContext{
		Log:    log,
		Client: niri.NewSocketClient(socketPath),
		Store:  state.NewStore(statePath),
	}, nil
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

func buildLogger(flags *rootFlags, cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	if flags.verbose {
		level = "debug"
	}

	format := firstNonEmpty(flags.logFormat, cfg.Logging.Format, "auto")
	if format == "auto" {
		format = string(logger.FormatJSON)
		if term.IsTerminal(int(os.Stderr.Fd())) {
			format = string(logger.FormatConsole)
		}
	}

	return logger.New(logger.Options{
		Level:  level,
		Format: logger.Format(format),
		Writer: os.Stderr,
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
