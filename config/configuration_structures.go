package config

import "time"

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// TrustProxyHeaders : включать только за reverse proxy, который перезаписывает X-Forwarded-For
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Local     bool   `yaml:"local"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// JWTConfig : параметры выпуска и проверки токенов
type JWTConfig struct {
	SecretKey         string        `yaml:"secret_key"`
	Issuer            string        `yaml:"issuer"`
	Audience          string        `yaml:"audience"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL   time.Duration `yaml:"refresh_token_ttl"`
	ClockSkew         time.Duration `yaml:"clock_skew"`
	MaxTokenAge       time.Duration `yaml:"max_token_age"`
	RevocationEnabled bool          `yaml:"revocation_enabled"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"`
}

type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// InferenceConfig : внешний сервис оценки риска; пустой URL отключает оценку
type InferenceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type RateLimitConfig struct {
	RPS       float64       `yaml:"rps"`
	Burst     int           `yaml:"burst"`
	CacheSize int           `yaml:"cache_size"`
	TTL       time.Duration `yaml:"ttl"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TTL struct {
	BlogCache    time.Duration `yaml:"blog_cache"`
	PresignedURL time.Duration `yaml:"presigned_url"`
}
