package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kingrain94/saas-platform-api/internal/domain"
	"github.com/kingrain94/saas-platform-api/internal/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Define command line flags
	userID := flag.String("user", "", "User ID for the token")
	roles := flag.String("roles", "", "Comma-separated list of roles (admin, manager, viewer)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	tenantID := flag.String("tenant", "", "Tenant ID for the token")
	flag.Parse()

	if _, err := uuid.Parse(*userID); err != nil {
		log.Fatal("User ID is required and must be a UUID")
	}

	if _, err := uuid.Parse(*tenantID); err != nil {
		log.Fatal("Tenant ID is required and must be a UUID")
	}

	// Parse roles
	rolesList := []string{}
	if *roles != "" {
		for _, role := range strings.Split(*roles, ",") {
			role = strings.TrimSpace(role)
			if !domain.IsValidRole(role) {
				log.Fatalf("Unknown role %q", role)
			}
			rolesList = append(rolesList, role)
		}
	}

	secret := getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key")
	ttl := time.Duration(*expirationHours) * time.Hour

	tokenString, err := middleware.GenerateToken(secret, ttl, *userID, *tenantID, rolesList)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
