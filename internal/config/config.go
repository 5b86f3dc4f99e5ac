package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 24 * time.Hour

type Config struct {
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
	JWTSecret         string
	TokenTTL          time.Duration
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskboard"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskboard"),
		DbName:            getEnv("MYSQL_DATABASE", "taskboard"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&loc=UTC&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		TokenTTL:          parseTTLHours(os.Getenv("JWT_TTL_HOURS")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTTLHours(value string) time.Duration {
	hours, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || hours <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(hours) * time.Hour
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
