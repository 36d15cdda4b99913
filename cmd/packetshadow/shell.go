package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/packetshadow/packetshadow/internal/app"
	"github.com/packetshadow/packetshadow/internal/command"
	"github.com/packetshadow/packetshadow/internal/config"
	"github.com/packetshadow/packetshadow/internal/discovery"
	"github.com/packetshadow/packetshadow/internal/logging"
	"github.com/packetshadow/packetshadow/internal/monitor"
	"github.com/packetshadow/packetshadow/internal/platform"
	"github.com/packetshadow/packetshadow/internal/session"
	"github.com/packetshadow/packetshadow/internal/ui"
	"github.com/packetshadow/packetshadow/internal/version"
)

// runShell wires the components together and runs the interactive screen.
func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		ui.NewPrinter(cmd.ErrOrStderr()).PrintError("Configuration", err)
		return err
	}

	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.Sync()

	logger := logging.GetLogger()
	warnings := platform.Check()
	logger.Info("starting",
		zap.String("version", version.Full()),
		zap.Strings("warnings", warnings),
		zap.String("tool", cfg.Monitor.Tool),
	)

	runner := command.NewExecRunner(command.Config{Timeout: cfg.Command.Timeout}, logger.Named("command"))
	scanner := discovery.NewScanner(discoveryConfig(cfg), runner, logger.Named("discovery"))
	controller := monitor.NewController(monitorConfig(cfg), runner, command.PathChecker{}, scanner, logger.Named("monitor"))

	err = app.Run(app.Options{
		Actions:  controller,
		Session:  session.New(),
		Warnings: warnings,
		Version:  version.Version,
		Logger:   logger.Named("app"),
	})
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

// loadConfig reads .env and the YAML config. --config wins over
// PACKETSHADOW_CONFIG, which wins over the default path.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// initLogging resolves the level and file from the environment first, then
// the config file. A level without a file logs to the config directory.
func initLogging(cfg *config.Config) error {
	level := os.Getenv(logging.LogLevelEnvVar)
	if level == "" {
		level = cfg.Logging.Level
	}
	path := os.Getenv(logging.LogFileEnvVar)
	if path == "" {
		path = cfg.Logging.File
	}
	if level != "" && path == "" {
		defaultPath, err := config.DefaultLogPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	return logging.Initialize(level, path)
}

func discoveryConfig(cfg *config.Config) discovery.Config {
	return discovery.Config{
		Primary:  cfg.Discovery.Primary,
		Fallback: cfg.Discovery.Fallback,
		Prefixes: cfg.Discovery.Prefixes,
	}
}

func monitorConfig(cfg *config.Config) monitor.Config {
	return monitor.Config{
		Tool:    cfg.Monitor.Tool,
		Suffix:  cfg.Monitor.Suffix,
		Restart: cfg.Network.Restart,
	}
}
