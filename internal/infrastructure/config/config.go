package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "MIHI"

// Config holds all configuration for our application
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Log        LogConfig        `mapstructure:"log"`
	Server     ServerConfig     `mapstructure:"server"`
	Inflection InflectionConfig `mapstructure:"inflection"`
	Cache      CacheConfig      `mapstructure:"cache"`

	// Dir is the directory holding the configuration file and, unless told
	// otherwise, the sqlite database.
	Dir string `mapstructure:"-"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres pgx"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	DSN    string `mapstructure:"dsn" validate:"required_unless=Driver sqlite3"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// ServerConfig holds the HTTP API configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port" validate:"gt=0,lt=65536"`
}

// InflectionConfig tunes how declension tables are shown.
type InflectionConfig struct {
	CaseOrder string `mapstructure:"case_order" validate:"oneof=european english"`
}

// CacheConfig holds the settings of the in-memory forms cache. A zero TTL
// disables the cache.
type CacheConfig struct {
	TTL     time.Duration `mapstructure:"ttl" validate:"gte=0"`
	Cleanup time.Duration `mapstructure:"cleanup" validate:"gte=0"`
}

// Dir returns the configuration directory for mihi: $XDG_CONFIG_HOME/mihi,
// falling back to ~/.config/mihi.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mihi"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.New("cannot find a suitable path for the configuration")
	}
	return filepath.Join(home, ".config", "mihi"), nil
}

// Load reads configuration from file and environment variables. When file
// is empty, config.yaml is looked up inside of Dir. A missing file is not an
// error.
func Load(file string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Only leaf keys are bound, so MIHI_DATABASE never shadows the database
	// section.
	for _, key := range v.AllKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(file == "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// MIHI_DATABASE predates the nested keys.
	if p := os.Getenv(EnvPrefix + "_DATABASE"); p != "" {
		config.Database.Path = p
	}
	config.Dir = dir
	if file != "" {
		config.Dir = filepath.Dir(file)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", "database.sqlite3")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.log_sql", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.http_port", 8080)

	v.SetDefault("inflection.case_order", "european")

	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.cleanup", 20*time.Minute)
}

// Validate checks the values against their struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DatabasePath returns the location of the sqlite database. Relative paths
// live inside of the configuration directory.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database.Path) || c.Dir == "" {
		return c.Database.Path
	}
	return filepath.Join(c.Dir, c.Database.Path)
}

// DataSource returns what database/sql needs to open the configured driver.
func (c *Config) DataSource() string {
	if c.Database.Driver == "sqlite3" {
		return c.DatabasePath()
	}
	return c.Database.DSN
}

// HTTPAddr returns the address the API server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}
