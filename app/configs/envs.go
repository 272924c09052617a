package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	Port        string
	AppEnv      string
	LogLevel    string
	TemplateDir string
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		Port:        getEnv("APP_PORT", ":8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		TemplateDir: getEnv("TEMPLATE_DIR", "templates"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
