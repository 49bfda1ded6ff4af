package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultEnv            = "prod"
	defaultConfigDir      = ".dropops"
	defaultGuardDelay     = 150 * time.Millisecond
	defaultRequestTimeout = 30 * time.Second
	defaultOutput         = "table"

	envPrefix = "DROPOPS"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	ServerAddress  string        `mapstructure:"server_address"`
	EnableTLS      bool          `mapstructure:"enable_tls"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigDir      string        `mapstructure:"config_dir"`
	DataPath       string        `mapstructure:"data_path"`
	KeystoreDir    string        `mapstructure:"keystore_dir"`
	GuardDelay     time.Duration `mapstructure:"guard_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Output         string        `mapstructure:"output"`
}

// Load читает конфигурацию клиента: .env, затем config.yaml, затем DROPOPS_* переменные.
// cfgFile перекрывает поиск config.yaml в ~/.dropops и текущей директории.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	configDir := filepath.Join(home, defaultConfigDir)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("server_address", defaultServerAddress)
	v.SetDefault("enable_tls", false)
	v.SetDefault("log_level", "")
	v.SetDefault("config_dir", configDir)
	v.SetDefault("data_path", "")
	v.SetDefault("keystore_dir", "")
	v.SetDefault("guard_delay", defaultGuardDelay)
	v.SetDefault("request_timeout", defaultRequestTimeout)
	v.SetDefault("output", defaultOutput)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if cfg.DataPath == "" {
		cfg.DataPath = filepath.Join(cfg.ConfigDir, "dropops.db")
	}
	if cfg.KeystoreDir == "" {
		cfg.KeystoreDir = filepath.Join(cfg.ConfigDir, "keystore")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return errors.New("server_address не может быть пустым")
	}
	switch c.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("неизвестный формат вывода %q", c.Output)
	}
	if c.GuardDelay < 0 {
		return errors.New("guard_delay не может быть отрицательным")
	}
	return nil
}

// BaseURL returns the server root with the scheme picked by EnableTLS.
func (c *Config) BaseURL() string {
	if strings.Contains(c.ServerAddress, "://") {
		return strings.TrimRight(c.ServerAddress, "/")
	}
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + strings.TrimRight(c.ServerAddress, "/")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
