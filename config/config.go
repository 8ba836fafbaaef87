package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/inkmap/inkmap/ink"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Ink    ink.Policy
	CORS   CORSConfig
	Dev    bool
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Endpoint string
}

type AuthConfig struct {
	// GoogleClientID is the audience ID tokens must be issued for.
	GoogleClientID string
	// DevSecret signs locally-minted tokens when Dev mode is on.
	DevSecret string
}

type CORSConfig struct {
	AllowOrigin string
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local runs.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	devMode := getBool("DEV_MODE", false)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("IDLE_TIMEOUT", 120*time.Second),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "inkmap"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Redis: RedisConfig{
			Endpoint: getEnv("REDIS_ENDPOINT", "localhost:6379"),
		},
		Auth: AuthConfig{
			GoogleClientID: getEnv("GOOGLE_OAUTH2_SERVER_CLIENT_ID", ""),
			DevSecret:      getEnv("DEV_AUTH_SECRET", ""),
		},
		Ink: ink.Policy{
			PerHour: getInt("INK_PER_HOUR", ink.DefaultPerHour),
			Cap:     getInt("INK_CAP", ink.DefaultCap),
			Initial: getInt("INITIAL_INK", ink.DefaultInitial),
		},
		CORS: CORSConfig{
			AllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		},
		Dev: devMode,
	}

	if devMode {
		cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	} else if cfg.Auth.GoogleClientID == "" {
		log.Fatal("GOOGLE_OAUTH2_SERVER_CLIENT_ID is required outside dev mode")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
