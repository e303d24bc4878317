package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"NightCycle/internal/engine"
	"NightCycle/internal/logger"
	"NightCycle/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Dataset struct {
		Path string `yaml:"path"` // empty: reference dataset
	} `yaml:"dataset"`
	Portfolio struct {
		Allocation     model.Allocation `yaml:"allocation"`
		InitialCapital float64          `yaml:"initial_capital" default:"100000" validate:"gt=0"`
	} `yaml:"portfolio"`
	Bond struct {
		FaceValue     float64 `yaml:"face_value" default:"100" validate:"gt=0"`
		MaturityYears float64 `yaml:"maturity_years" default:"1" validate:"gt=0"`
	} `yaml:"bond"`
	Risk struct {
		RiskFreeAnnual float64 `yaml:"risk_free_annual" default:"0.065" validate:"gte=0"`
		TradingDays    int     `yaml:"trading_days" default:"252" validate:"gt=0"`
	} `yaml:"risk"`
	Indicators struct {
		MAWindow int `yaml:"ma_window" default:"3" validate:"gt=0"`
	} `yaml:"indicators"`
	Report struct {
		Title     string `yaml:"title" default:"Extended Night Cycle Retro Calculation Summary (Indian Market):"`
		Currency  string `yaml:"currency" default:"₹"`
		ChartPath string `yaml:"chart_path"`
	} `yaml:"report"`
	Schedule struct {
		NightlyCron string `yaml:"nightly_cron" default:"0 30 22 * * 1-5"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id" validate:"required_with=BotToken"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log   logger.Config `yaml:"log"`
	Proxy string        `yaml:"proxy"`
}

var validate = validator.New()

// Load seeds struct-tag defaults, reads config from a YAML file, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NIGHTCYCLE_DATASET"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Risk.RiskFreeAnnual = f
		}
	}
	if v := os.Getenv("INITIAL_CAPITAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.InitialCapital = f
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_NIGHTLY"); v != "" {
		cfg.Schedule.NightlyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	return cfg, nil
}

// Validate checks field constraints and that the allocation sums to one.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	sum := c.Portfolio.Allocation.Equity + c.Portfolio.Allocation.Bond
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("portfolio.allocation must sum to 1.0, got %g", sum)
	}
	return nil
}

// Params maps the configuration onto the report constants.
func (c *Config) Params() engine.Params {
	return engine.Params{
		Allocation:     c.Portfolio.Allocation,
		FaceValue:      c.Bond.FaceValue,
		MaturityYears:  c.Bond.MaturityYears,
		RiskFreeAnnual: c.Risk.RiskFreeAnnual,
		TradingDays:    c.Risk.TradingDays,
		MAWindow:       c.Indicators.MAWindow,
		InitialCapital: c.Portfolio.InitialCapital,
	}
}

// TelegramEnabled reports whether report delivery is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
