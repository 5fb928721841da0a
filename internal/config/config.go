package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
	StoreBackendSQL    = "sql"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	DB       DBConfig
	Logger   LoggerConfig
	Progress ProgressConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects the key-value backend that holds quiz history, the roadmap
// and the last activity timestamp.
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	Namespace string `yaml:"namespace"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Driver string `yaml:"driver"` // sqlite | oracle
	DSN    string `yaml:"dsn"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
	File  string `yaml:"file"` // optional rotating log file
}

type ProgressConfig struct {
	RecentLimit int    `yaml:"recent_limit"`
	DateLayout  string `yaml:"date_layout"`
	Timezone    string `yaml:"timezone"`
}

// Location resolves the configured timezone, falling back to time.Local.
func (p ProgressConfig) Location() *time.Location {
	if p.Timezone == "" || p.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("store.backend", StoreBackendMemory)
	v.SetDefault("store.namespace", "careerpath")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:careerpath.db?_pragma=busy_timeout(5000)")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("progress.recent_limit", 5)
	v.SetDefault("progress.date_layout", "1/2/2006")
	v.SetDefault("progress.timezone", "Local")
}

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
		},
		Store: StoreConfig{
			Backend:   v.GetString("store.backend"),
			Namespace: v.GetString("store.namespace"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		DB: DBConfig{
			Driver: v.GetString("db.driver"),
			DSN:    v.GetString("db.dsn"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
			File:  v.GetString("logger.file"),
		},
		Progress: ProgressConfig{
			RecentLimit: v.GetInt("progress.recent_limit"),
			DateLayout:  v.GetString("progress.date_layout"),
			Timezone:    v.GetString("progress.timezone"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
		config.Server.Port = p
	}
	if backend := os.Getenv("STORE_BACKEND"); backend != "" {
		config.Store.Backend = backend
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		config.DB.Driver = driver
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		config.DB.DSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings that cannot be defaulted at use sites.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendSQL:
	default:
		return fmt.Errorf("unsupported store backend: %q", c.Store.Backend)
	}
	if c.Store.Backend == StoreBackendSQL && c.DB.Driver != "sqlite" && c.DB.Driver != "oracle" {
		return fmt.Errorf("unsupported db driver: %q", c.DB.Driver)
	}
	if c.Progress.RecentLimit <= 0 {
		c.Progress.RecentLimit = 5
	}
	if c.Progress.DateLayout == "" {
		c.Progress.DateLayout = "1/2/2006"
	}
	return nil
}
