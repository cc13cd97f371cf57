package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	AccessExpiryMin    int
	RefreshLifetimeHrs int

	OtpLength          int
	OtpVerifyTTLMin    int
	OtpResetTTLMin     int
	OtpMaxActive       int
	OtpMaxAttempts     int
	OtpThrottleSeconds int
	OtpEchoEnabled     bool

	PurgeIntervalMin int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshLifetimeHrs: getEnvAsInt("REFRESH_LIFETIME_HOURS", 96),
		OtpLength:          getEnvAsInt("OTP_LENGTH", 6),
		OtpVerifyTTLMin:    getEnvAsInt("OTP_VERIFY_TTL", 15),
		OtpResetTTLMin:     getEnvAsInt("OTP_RESET_TTL", 10),
		OtpMaxActive:       getEnvAsInt("OTP_MAX_ACTIVE", 3),
		OtpMaxAttempts:     getEnvAsInt("OTP_MAX_ATTEMPTS", 5),
		OtpThrottleSeconds: getEnvAsInt("OTP_THROTTLE_SECONDS", 60),
		OtpEchoEnabled:     getEnvAsBool("OTP_ECHO", false),
		PurgeIntervalMin:   getEnvAsInt("PURGE_INTERVAL", 60),
		SMTPHost:           getEnv("SMTP_HOST", "localhost"),
		SMTPPort:           getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:           getEnv("SMTP_USER", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", "hello@radiofy.app"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
