package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Model       ModelConfig
	CORS        CORSConfig
	Logger      LoggerConfig
	HealthCheck HealthCheckConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type ModelConfig struct {
	ArtifactPath string
	SchemaPath   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level  string
	Format string
}

type HealthCheckConfig struct {
	URL     string
	Timeout time.Duration
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("MODEL_ARTIFACT_PATH", "model/model.json")
	v.SetDefault("MODEL_SCHEMA_PATH", "model/columns.json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("HEALTHCHECK_URL", "http://localhost:8000/health")
	v.SetDefault("HEALTHCHECK_TIMEOUT", "5s")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     duration(v, "SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    duration(v, "SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: duration(v, "SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Model: ModelConfig{
			ArtifactPath: v.GetString("MODEL_ARTIFACT_PATH"),
			SchemaPath:   v.GetString("MODEL_SCHEMA_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		HealthCheck: HealthCheckConfig{
			URL:     v.GetString("HEALTHCHECK_URL"),
			Timeout: duration(v, "HEALTHCHECK_TIMEOUT", 5*time.Second),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
