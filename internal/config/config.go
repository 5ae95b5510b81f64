package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName   string    `yaml:"app_name"`
	Server    Server    `yaml:"server"`
	Client    Client    `yaml:"client"`
	RateLimit RateLimit `yaml:"rate_limit"`
}

type Server struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	CORSOrigins  []string `yaml:"cors_origins"`
	DatabasePath string   `yaml:"database_path"`
	ProductsPath string   `yaml:"products_path"`
}

type Client struct {
	BaseURL string `yaml:"base_url"`
}

type RateLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

const (
	configDir   = ".convosage"
	configFile  = "config.yaml"
	dataDir     = "data"
	logsDir     = "logs"
	sessionFile = "sessions.json"
)

func GetHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func ConfigPath() string {
	return filepath.Join(GetHomeDir(), configDir, configFile)
}

func DataPath() string {
	return filepath.Join(GetHomeDir(), configDir, dataDir)
}

func LogsPath() string {
	return filepath.Join(GetHomeDir(), configDir, logsDir)
}

// SessionsPath is where the chat client persists session history.
func SessionsPath() string {
	return filepath.Join(GetHomeDir(), configDir, sessionFile)
}

func DefaultDatabasePath() string {
	return filepath.Join(DataPath(), "outlets.db")
}

func DefaultConfig() *Config {
	return &Config{
		AppName: "ConvoSage",
		Server: Server{
			Host:         "127.0.0.1",
			Port:         8000,
			CORSOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
			DatabasePath: DefaultDatabasePath(),
			ProductsPath: "", // empty means the embedded catalog
		},
		Client: Client{
			BaseURL: "http://127.0.0.1:8000",
		},
		RateLimit: RateLimit{
			RequestsPerMinute: 60,
			Burst:             10,
		},
	}
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(ConfigPath()),
		DataPath(),
		LogsPath(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
