package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ServerPort string
	AppURL     string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	GeminiAPIKey    string
	GeminiModel     string
	GenerateTimeout time.Duration

	JwtSecret    string
	Issuer       string
	FormTokenTTL time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	GoogleFormsCredentials string

	CORSAllowedOrigins []string

	LogLevel string
	LogDev   bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	AppURL = strings.TrimRight(getEnv("APP_URL", "http://localhost:3000"), "/")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "survey")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	GeminiAPIKey = getEnv("GOOGLE_GEMINI_API_KEY", "")
	GeminiModel = getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest")
	GenerateTimeout = getDuration("GENERATE_TIMEOUT", 30*time.Second)

	// An empty secret disables form access tokens; only passwords open forms.
	JwtSecret = getEnv("JWT_SECRET", "")
	Issuer = getEnv("ISSUER", "survey-platform")
	FormTokenTTL = getDuration("FORM_TOKEN_TTL", time.Hour)

	// An empty endpoint disables analysis archiving.
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "survey-reports")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	GoogleFormsCredentials = getEnv("GOOGLE_FORMS_CREDENTIALS", "")

	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:,http://127.0.0.1:"))

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogDev, _ = strconv.ParseBool(getEnv("LOG_DEV", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid duration for %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
