package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI      string
	DBName        string
	Port          string
	BrazilianURL  string
	EuropeanURL   string
	AllowedOrigin string
}

const (
	defaultBrazilianURL = "http://616d6bdb6dacbb001794ca17.mockapi.io/devnology/brazilian_provider"
	defaultEuropeanURL  = "http://616d6bdb6dacbb001794ca17.mockapi.io/devnology/european_provider"
)

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:        getEnvOrDefault("DB_NAME", "storefront"),
		Port:          getEnvOrDefault("PORT", "3001"),
		BrazilianURL:  getEnvOrDefault("BRAZILIAN_PROVIDER_URL", defaultBrazilianURL),
		EuropeanURL:   getEnvOrDefault("EUROPEAN_PROVIDER_URL", defaultEuropeanURL),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
