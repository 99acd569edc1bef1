package probe

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"codeberg.org/n30w/gemprobe/pkg/gemini"
)

type Mode string

const (
	// ModeRaw posts a hand-built JSON body straight to the REST endpoint.
	ModeRaw Mode = "raw"

	// ModeSDK sends the same prompt through the `genai` SDK.
	ModeSDK Mode = "sdk"
)

const DefaultKeyEnv = "GEMINI_API_KEY"

type Config struct {
	// Endpoint is the models collection URL, without the model name.
	Endpoint string `toml:"endpoint" validate:"required,url"`
	Model    string `toml:"model" validate:"required"`
	Prompt   string `toml:"prompt" validate:"required"`

	// KeyEnv names the environment variable holding the API key.
	KeyEnv string `toml:"keyEnv" validate:"required"`

	// Timeout bounds a single request. Zero disables it.
	Timeout time.Duration `toml:"timeout" validate:"gte=0"`

	Mode Mode `toml:"mode" validate:"oneof=raw sdk"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint: gemini.DefaultBaseURL,
		Model:    gemini.DefaultModel,
		Prompt:   gemini.DefaultPrompt,
		KeyEnv:   DefaultKeyEnv,
		Timeout:  0,
		Mode:     ModeRaw,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (cfg Config) Validate() error {
	err := validate.Struct(cfg)
	if err != nil {
		return errors.Wrap(err, "invalid probe config")
	}

	return nil
}

func (cfg Config) endpoint() gemini.Endpoint {
	return gemini.Endpoint{
		BaseURL: cfg.Endpoint,
		Model:   cfg.Model,
	}
}
