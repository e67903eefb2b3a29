package config

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTKey      string
	Port        string
	AdminID     uuid.UUID
}

func Load() *Config {
	_ = godotenv.Load()

	databaseUrl := os.Getenv("DATABASE_URL")
	if databaseUrl == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		log.Fatal("JWT_KEY environment variable is required")
	}

	// the booting account becomes the store administrator, like a contract
	// deployer
	adminRaw := os.Getenv("ADMIN_ID")
	if adminRaw == "" {
		log.Fatal("ADMIN_ID environment variable is required")
	}
	adminID, err := uuid.Parse(adminRaw)
	if err != nil {
		log.Fatalf("ADMIN_ID must be a valid account id: %v", err)
	}

	port := os.Getenv("PORT")

	return &Config{DatabaseURL: databaseUrl, JWTKey: jwtKey, Port: port, AdminID: adminID}
}
