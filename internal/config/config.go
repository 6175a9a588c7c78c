package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"readTimeout"`
		WriteTimeout    time.Duration `yaml:"writeTimeout"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
		AllowedOrigins  []string      `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // json | console
	} `yaml:"log"`

	Auth struct {
		// APIKeys maps a user id to its API key
		APIKeys map[string]string `yaml:"apiKeys"`
	} `yaml:"auth"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	Analysis struct {
		Provider string        `yaml:"provider"` // mock | openai
		Delay    time.Duration `yaml:"delay"`
		Timeout  time.Duration `yaml:"timeout"`
		OpenAI   struct {
			APIKey  string `yaml:"apiKey"`
			Model   string `yaml:"model"`
			BaseURL string `yaml:"baseURL"`
		} `yaml:"openai"`
	} `yaml:"analysis"`

	Store struct {
		Driver string `yaml:"driver"` // memory | file | sqlite | mysql | postgres | redis | minio
		Key    string `yaml:"key"`
		Path   string `yaml:"path"`
	} `yaml:"store"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	cfg.RateLimit.Capacity = 10
	cfg.RateLimit.RefillRate = 1
	cfg.Analysis.Provider = "mock"
	cfg.Analysis.Delay = 2500 * time.Millisecond
	cfg.Analysis.Timeout = 20 * time.Second
	cfg.Store.Driver = "file"
	cfg.Store.Key = "ideas"
	cfg.Store.Path = "data/ideas.json"
	cfg.Database.SSLMode = "disable"
	return &cfg
}

// Load reads the YAML file at path over the defaults, then applies
// IDEAFORGE_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("IDEAFORGE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid IDEAFORGE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("IDEAFORGE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("IDEAFORGE_STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := getenv("IDEAFORGE_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := getenv("IDEAFORGE_ANALYSIS_PROVIDER"); v != "" {
		c.Analysis.Provider = v
	}
	if v := getenv("IDEAFORGE_ANALYSIS_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid IDEAFORGE_ANALYSIS_DELAY: %w", err)
		}
		c.Analysis.Delay = d
	}
	if v := getenv("OPENAI_API_KEY"); v != "" {
		c.Analysis.OpenAI.APIKey = v
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Analysis.Delay < 0 {
		return errors.New("analysis delay must not be negative")
	}
	switch strings.ToLower(c.Analysis.Provider) {
	case "mock":
	case "openai":
		if c.Analysis.OpenAI.APIKey == "" {
			return errors.New("analysis provider openai needs analysis.openai.apiKey")
		}
	default:
		return fmt.Errorf("unknown analysis provider %q", c.Analysis.Provider)
	}
	switch strings.ToLower(c.Store.Driver) {
	case "memory", "mysql", "postgres", "redis", "minio":
	case "file", "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("store driver %s needs store.path", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds a lib/pq connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
