package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"vall-activa-sessions"`

	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Email  EmailConfig
	Jaeger *JaegerConfig
}

type ServerConfig struct {
	Mode   string `env:"SERVER_MODE"   envDefault:"dev"`
	Scheme string `env:"SERVER_SCHEME" envDefault:"http"`
	Domain string `env:"SERVER_DOMAIN" envDefault:"localhost"`
	Port   int    `env:"SERVER_PORT"   envDefault:"8080"`
}

type DBConfig struct {
	Host     string `env:"POSTGRES_HOST"     envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT"     envDefault:"5432"`
	User     string `env:"POSTGRES_USER"     envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Database string `env:"POSTGRES_DB"       envDefault:"vall_activa"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASS" envDefault:""`
}

type AuthConfig struct {
	JWT JWTConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET,required"`
	Issuer string `env:"JWT_ISSUER" envDefault:"vall-activa"`
}

type EmailConfig struct {
	Server string `env:"EMAIL_SERVER" envDefault:""`
	Port   int    `env:"EMAIL_PORT"   envDefault:"587"`
	User   string `env:"EMAIL_USER"   envDefault:""`
	Pass   string `env:"EMAIL_PASS"   envDefault:""`
	Admin  string `env:"EMAIL_ADMIN"  envDefault:""`
}

type JaegerConfig struct {
	Sampler  SamplerConfig
	Reporter ReporterConfig
}

type SamplerConfig struct {
	Type  string `env:"JAEGER_SAMPLER_TYPE"  envDefault:"const"`
	Param int    `env:"JAEGER_SAMPLER_PARAM" envDefault:"1"`
}

type ReporterConfig struct {
	LogSpans           bool   `env:"JAEGER_REPORTER_LOG_SPANS" envDefault:"false"`
	LocalAgentHostPort string `env:"JAEGER_AGENT_ADDR"         envDefault:"localhost:6831"`
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("No .env file found")
	}

	conf := Config{Jaeger: &JaegerConfig{}}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse environment", zap.Error(err))
	}

	return conf
}
