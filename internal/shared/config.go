package shared

import (
	_ "embed"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server ServerConfig `toml:"server" json:"server"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// ServerConfig contains static asset server settings.
type ServerConfig struct {
	Host            string   `toml:"host" json:"host"`
	Port            int      `toml:"port" json:"port"`
	Root            string   `toml:"root" json:"root"`
	Index           string   `toml:"index" json:"index"`
	CacheMaxAge     Duration `toml:"cache_max_age" json:"cache_max_age"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" json:"shutdown_timeout"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
}

// Duration wraps [time.Duration] so it can be decoded from TOML strings like "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: duration %q: %v", ErrInvalidConfig, text, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Addr joins the configured host and port into a listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports the first invalid setting wrapped in [ErrInvalidConfig].
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	if c.Server.Root == "" {
		return fmt.Errorf("%w: server.root is empty", ErrInvalidConfig)
	}
	if c.Server.Index == "" {
		return fmt.Errorf("%w: server.index is empty", ErrInvalidConfig)
	}
	if c.Server.CacheMaxAge.Duration <= 0 {
		return fmt.Errorf("%w: cache_max_age must be positive", ErrInvalidConfig)
	}
	return nil
}

// PortFromEnv returns the port named by the PORT environment variable, or fallback when unset.
func PortFromEnv(fallback int) (int, error) {
	raw, ok := os.LookupEnv("PORT")
	if !ok || raw == "" {
		return fallback, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: PORT=%q", ErrInvalidFlag, raw)
	}
	return port, nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidArgument)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
