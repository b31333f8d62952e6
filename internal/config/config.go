package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	AdminKey        string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	MaxUploadSizeMB int64         `mapstructure:"MAX_UPLOAD_MB"`
	DataDir         string        `mapstructure:"DATA_DIR"`
	GeocachePaths   string        `mapstructure:"GEOCACHE_PATHS"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_UPLOAD_MB", 16)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("GEOCACHE_PATHS", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EmployeesPath is the JSON file holding the uploaded employee roster.
func (c Config) EmployeesPath() string {
	return filepath.Join(c.DataDir, "employees.json")
}

// TicketsPath is the JSON document holding customer tickets.
func (c Config) TicketsPath() string {
	return filepath.Join(c.DataDir, "customers_data.json")
}

// GeocacheCandidates returns the ordered list of geocache files to try at
// startup. The configured comma-separated list takes priority; the default
// location under DataDir is always the last fallback.
func (c Config) GeocacheCandidates() []string {
	var out []string
	for _, p := range strings.Split(c.GeocachePaths, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return append(out, filepath.Join(c.DataDir, "geocache.json"))
}
