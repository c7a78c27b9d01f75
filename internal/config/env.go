package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	UploadTempDir string

	CORSAllowedOrigins []string

	// AnthropicAPIKey enables the AI review summary when present.
	AnthropicAPIKey string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":4000"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_TEMP_DIR"))
	if uploadDir == "" {
		uploadDir = "uploads/temp"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:             getenvDefault("DB_USER", "root"),
		DBPass:             os.Getenv("DB_PASS"),
		DBHost:             getenvDefault("DB_HOST", "127.0.0.1:3306"),
		DBName:             getenvDefault("DB_NAME", "marquesa"),
		JWTSecret:          secret,
		UploadTempDir:      uploadDir,
		CORSAllowedOrigins: origins,
		AnthropicAPIKey:    strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
	}
}

func getenvDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
