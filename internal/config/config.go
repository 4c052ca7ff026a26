package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	URI          string
	DatabaseName string
}

type Config struct {
	Host            string
	Port            string
	MongoDBConfig   MongoDBConfig
	JWTSecret       string
	RecaptchaSecret string
	CORSOrigins     []string
	UploadDir       string
}

// CreateNewConfig reads the environment (optionally from .env) and fails
// fast when a secret is missing, matching the behavior the frontends rely on.
func CreateNewConfig() (*Config, error) {
	godotenv.Load(".env")

	conf := Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "5000"),
		MongoDBConfig: MongoDBConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017/"),
			DatabaseName: getEnv("DATABASE_NAME", "medicare"),
		},
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		RecaptchaSecret: os.Getenv("RECAPTCHA_SECRET_KEY"),
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),
	}

	if conf.JWTSecret == "" || conf.RecaptchaSecret == "" {
		return nil, errors.New("missing secrets in environment variables")
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173,http://localhost:5500,http://127.0.0.1:5500")
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			conf.CORSOrigins = append(conf.CORSOrigins, origin)
		}
	}

	return &conf, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
