package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr        string
	GinMode        string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBName         string
	JWTSecret      string
	CORSOrigins    []string
	DistanceAPIURL string
}

func LoadEnv() Env {
	// .env is optional; deployments set the variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:         getenv("DB_USER", "root"),
		DBPassword:     strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBHost:         getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:         getenv("DB_NAME", "transfer_app"),
		JWTSecret:      getenv("JWT_SECRET", "change-me"),
		CORSOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DistanceAPIURL: strings.TrimSpace(os.Getenv("DISTANCE_API_URL")),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
