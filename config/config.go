package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
	UploadDir string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// values from .env override anything already in the environment
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "rippleDatabase"),
		Port:      getEnv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		UploadDir: getEnv("UPLOAD_DIR", "./public/uploads"),
	}
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}
	return cfg
}
