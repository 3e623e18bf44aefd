package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server         ServerConfig    `yaml:"server"`
	DatabaseConfig DatabaseConfig  `yaml:"databaseConfig"`
	RedisConfig    RedisConfig     `yaml:"redisConfig"`
	S3Config       S3Config        `yaml:"s3Config"`
	JWT            JWTConfig       `yaml:"jwt"`
	Security       SecurityConfig  `yaml:"security"`
	Inference      InferenceConfig `yaml:"inference"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Log            LogConfig       `yaml:"log"`
	TTL            TTL             `yaml:"TTL"`
}

// Defaults : значения, которые перекрываются файлом и переменными окружения
func Defaults() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DatabaseConfig: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			QueryTimeout:    5 * time.Second,
		},
		RedisConfig: RedisConfig{
			Addr: "localhost:6379",
		},
		S3Config: S3Config{
			Bucket: "health-tracker",
			Region: "us-east-1",
		},
		JWT: JWTConfig{
			Issuer:          "health-tracker-server",
			Audience:        "health-tracker-client",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			ClockSkew:       15 * time.Second,
			MaxTokenAge:     4 * time.Hour,
			CleanupInterval: time.Hour,
		},
		Security: SecurityConfig{
			BcryptCost: bcrypt.DefaultCost,
		},
		Inference: InferenceConfig{
			Timeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RPS:       5,
			Burst:     20,
			CacheSize: 10_000,
			TTL:       time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
		TTL: TTL{
			BlogCache:    10 * time.Minute,
			PresignedURL: 15 * time.Minute,
		},
	}
}

// LoadConfig : значения по умолчанию, затем YAML файл (если есть), затем переменные окружения
func LoadConfig(path string) (*AppConfig, error) {
	cfg := Defaults()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) Validate() error {
	var errs []error

	if c.DatabaseConfig.DSN == "" {
		errs = append(errs, errors.New("не задан DSN базы данных (DATABASE_URL)"))
	}
	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("не задан секрет подписи токенов (JWT_SECRET)"))
	}
	if c.JWT.AccessTokenTTL <= 0 || c.JWT.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("время жизни токенов должно быть положительным"))
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt_cost должен быть в диапазоне [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}

	return errors.Join(errs...)
}

func SetupServer(cfg *ServerConfig) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	return NewDatabaseConnection("postgres", cfg)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
