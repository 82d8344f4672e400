package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"household-calc/internal/data"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HOUSEHOLD_ADDRESS or
// HOUSEHOLD_LOGGING_LEVEL.
const EnvPrefix = "HOUSEHOLD"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the server configuration. Values come from, in increasing
// priority: defaults, the optional YAML file, then the environment.
type Config struct {
	Address         string        `mapstructure:"address"`
	Env             string        `mapstructure:"env"`
	TaxTable        string        `mapstructure:"tax_table"`
	BudgetTable     string        `mapstructure:"budget_table"`
	StaticDir       string        `mapstructure:"static_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Logging         LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("address", ":8000")
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("tax_table", data.DefaultTaxTablePath)
	v.SetDefault("budget_table", data.DefaultBudgetTablePath)
	v.SetDefault("static_dir", "./web")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_file", "")
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none are
// given) into the process environment. Missing files are ignored; variables
// already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the configuration. A missing file at path is not an error; the
// defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	var problems []string
	if strings.TrimSpace(c.Address) == "" {
		problems = append(problems, "address is required")
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		problems = append(problems, fmt.Sprintf("env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env))
	}
	if c.TaxTable == "" || c.BudgetTable == "" {
		problems = append(problems, "tax_table and budget_table are required")
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, "shutdown_timeout must be positive")
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		problems = append(problems, err.Error())
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format: %s", c.Logging.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
