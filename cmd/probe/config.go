package main

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"codeberg.org/n30w/gemprobe/pkg/probe"
)

const (
	DefaultDebugToggle     = false
	DefaultProbeConfigPath = "./probe.toml"
	DefaultEnvFilePath     = ".env"
	DefaultMode            = ""
	DefaultModel           = ""
	DefaultTimeout         = time.Duration(0)
)

type flags struct {
	configPath string
	mode       string
	model      string
	timeout    time.Duration
}

// loadEnvFile mirrors the usual dotenv behaviour: a missing file is fine and
// variables already in the environment are left alone.
func loadEnvFile(path string, logger *log.Logger) {
	err := godotenv.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debugf("No env file at %s", path)
	case err != nil:
		logger.Warn("Failed to load env file", "path", path, "err", err)
	default:
		logger.Debugf("Loaded env file %s", path)
	}
}

// loadConfig starts from the defaults and layers the TOML file, then any
// flags that were changed, on top.
func loadConfig(f flags, logger *log.Logger) probe.Config {
	cfg := probe.DefaultConfig()

	_, err := toml.DecodeFile(f.configPath, &cfg)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Debugf("No probe config at %s, using defaults", f.configPath)
	case err != nil:
		logger.Error(err.Error())
		logger.Warnf("Failed to load probe config! Using defaults.")
		cfg = probe.DefaultConfig()
	}

	if f.mode != DefaultMode {
		cfg.Mode = probe.Mode(f.mode)
	}

	if f.model != DefaultModel {
		cfg.Model = f.model
	}

	if f.timeout != DefaultTimeout {
		cfg.Timeout = f.timeout
	}

	return cfg
}
