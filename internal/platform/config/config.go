package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	APIPort string

	// JWTSecret deliberately has no default. An empty secret is a server
	// configuration error surfaced by the token manager at issue/verify
	// time, never silently replaced.
	JWTSecret []byte

	// TokenTTL bounds the signed token itself; CookieMaxAge bounds the
	// cookie carrying it. The cookie intentionally outlives the token.
	TokenTTL     time.Duration
	CookieMaxAge time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LatestJobsCacheKey string
	LatestJobsCacheTTL time.Duration
	LatestJobsLimit    int
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:      getEnv("API_PORT", "8080"),
		JWTSecret:    []byte(getEnv("JWT_SECRET", "")),
		TokenTTL:     time.Duration(getEnvAsInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		CookieMaxAge: time.Duration(getEnvAsInt("COOKIE_MAX_AGE_HOURS", 24)) * time.Hour,

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "jobboard_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		LatestJobsCacheKey: getEnv("LATEST_JOBS_CACHE_KEY", "jobs:latest"),
		LatestJobsCacheTTL: time.Duration(getEnvAsInt("LATEST_JOBS_CACHE_TTL_SECONDS", 60)) * time.Second,
		LatestJobsLimit:    getEnvAsInt("LATEST_JOBS_LIMIT", 6),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
