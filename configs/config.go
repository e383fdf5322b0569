package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	SeedPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ no .env file, using environment only")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "condocare.db"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    MustGetEnv("JWT_SECRET"), // ห้ามมี default (ดู DESIGN.md)
		JWTTTL:       time.Duration(24) * time.Hour,
		SeedPassword: os.Getenv("SEED_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
