package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"codeberg.org/n30w/gemprobe/pkg/probe"
)

func main() {
	var (
		flagDebug = flag.Bool(
			"debug",
			DefaultDebugToggle,
			"debug mode, extra logging",
		)
		flagConfigPath = flag.String(
			"configFile",
			DefaultProbeConfigPath,
			"probe configuration file path",
		)
		flagEnvPath = flag.String(
			"envFile",
			DefaultEnvFilePath,
			"dotenv file loaded before reading the API key",
		)
		flagMode = flag.String(
			"mode",
			DefaultMode,
			"`raw` posts JSON directly, `sdk` uses the genai client",
		)
		flagModel = flag.String(
			"model",
			DefaultModel,
			"model to call, overrides the config file",
		)
		flagTimeout = flag.Duration(
			"timeout",
			DefaultTimeout,
			"request timeout, 0 waits forever",
		)
	)

	flag.Parse()

	logOptions := log.Options{
		ReportTimestamp: true,
	}

	if *flagDebug {
		logOptions.Level = log.DebugLevel
		logOptions.ReportCaller = true
	}

	logger := log.NewWithOptions(os.Stderr, logOptions)

	logger.Debug("DEBUG is set to TRUE")

	loadEnvFile(*flagEnvPath, logger)

	cfg := loadConfig(
		flags{
			configPath: *flagConfigPath,
			mode:       *flagMode,
			model:      *flagModel,
			timeout:    *flagTimeout,
		},
		logger,
	)

	if cfg.Timeout == 0 {
		logger.Debug("No request timeout set, the request may block indefinitely")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	defer stop()

	p, err := probe.New(cfg, os.Stdout, logger)
	if err != nil {
		logger.Fatal(err)
	}

	p.Run(ctx)
}
