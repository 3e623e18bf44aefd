package config

import "github.com/spf13/viper"

type envBinding struct {
	key   string
	apply func(v *viper.Viper, cfg *AppConfig)
}

var envBindings = []envBinding{
	{"SERVER_ADDR", func(v *viper.Viper, c *AppConfig) { c.Server.Addr = v.GetString("SERVER_ADDR") }},
	{"TRUST_PROXY_HEADERS", func(v *viper.Viper, c *AppConfig) { c.Server.TrustProxyHeaders = v.GetBool("TRUST_PROXY_HEADERS") }},
	{"DATABASE_URL", func(v *viper.Viper, c *AppConfig) { c.DatabaseConfig.DSN = v.GetString("DATABASE_URL") }},
	{"DB_MAX_OPEN_CONNS", func(v *viper.Viper, c *AppConfig) { c.DatabaseConfig.MaxOpenConns = v.GetInt("DB_MAX_OPEN_CONNS") }},
	{"DB_QUERY_TIMEOUT", func(v *viper.Viper, c *AppConfig) { c.DatabaseConfig.QueryTimeout = v.GetDuration("DB_QUERY_TIMEOUT") }},
	{"REDIS_ADDR", func(v *viper.Viper, c *AppConfig) { c.RedisConfig.Addr = v.GetString("REDIS_ADDR") }},
	{"REDIS_PASSWORD", func(v *viper.Viper, c *AppConfig) { c.RedisConfig.Password = v.GetString("REDIS_PASSWORD") }},
	{"REDIS_DB", func(v *viper.Viper, c *AppConfig) { c.RedisConfig.DB = v.GetInt("REDIS_DB") }},
	{"JWT_SECRET", func(v *viper.Viper, c *AppConfig) { c.JWT.SecretKey = v.GetString("JWT_SECRET") }},
	{"JWT_ISSUER", func(v *viper.Viper, c *AppConfig) { c.JWT.Issuer = v.GetString("JWT_ISSUER") }},
	{"JWT_AUDIENCE", func(v *viper.Viper, c *AppConfig) { c.JWT.Audience = v.GetString("JWT_AUDIENCE") }},
	{"ACCESS_TOKEN_TTL", func(v *viper.Viper, c *AppConfig) { c.JWT.AccessTokenTTL = v.GetDuration("ACCESS_TOKEN_TTL") }},
	{"REFRESH_TOKEN_TTL", func(v *viper.Viper, c *AppConfig) { c.JWT.RefreshTokenTTL = v.GetDuration("REFRESH_TOKEN_TTL") }},
	{"JWT_REVOCATION_ENABLED", func(v *viper.Viper, c *AppConfig) { c.JWT.RevocationEnabled = v.GetBool("JWT_REVOCATION_ENABLED") }},
	{"BCRYPT_COST", func(v *viper.Viper, c *AppConfig) { c.Security.BcryptCost = v.GetInt("BCRYPT_COST") }},
	{"INFERENCE_URL", func(v *viper.Viper, c *AppConfig) { c.Inference.URL = v.GetString("INFERENCE_URL") }},
	{"INFERENCE_TIMEOUT", func(v *viper.Viper, c *AppConfig) { c.Inference.Timeout = v.GetDuration("INFERENCE_TIMEOUT") }},
	{"S3_BUCKET", func(v *viper.Viper, c *AppConfig) { c.S3Config.Bucket = v.GetString("S3_BUCKET") }},
	{"S3_REGION", func(v *viper.Viper, c *AppConfig) { c.S3Config.Region = v.GetString("S3_REGION") }},
	{"S3_ENDPOINT", func(v *viper.Viper, c *AppConfig) { c.S3Config.Endpoint = v.GetString("S3_ENDPOINT") }},
	{"S3_LOCAL", func(v *viper.Viper, c *AppConfig) { c.S3Config.Local = v.GetBool("S3_LOCAL") }},
	{"LOG_LEVEL", func(v *viper.Viper, c *AppConfig) { c.Log.Level = v.GetString("LOG_LEVEL") }},
}

// applyEnvOverrides : переменные окружения имеют приоритет над файлом
func applyEnvOverrides(cfg *AppConfig) {
	v := viper.New()
	v.AutomaticEnv()

	for _, binding := range envBindings {
		if v.IsSet(binding.key) {
			binding.apply(v, cfg)
		}
	}
}
