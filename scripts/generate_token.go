package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/notes-api/pkg/token"
)

// Prints a session token for local testing. The user must exist in the
// database because sessions are re-read on every request.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "User ID for the token")
	email := flag.String("email", "", "Email recorded in the token")
	role := flag.String("role", "member", "Role recorded in the token (admin or member)")
	tenantSlug := flag.String("tenant", "", "Tenant slug for the token")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if *tenantSlug == "" {
		log.Fatal("Tenant slug is required")
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "notes-api"
	}

	manager, err := token.NewManager(secret, time.Duration(*expirationHours)*time.Hour, issuer)
	if err != nil {
		log.Fatalf("Error creating token manager: %v", err)
	}

	tokenString, err := manager.Sign(token.Identity{
		UserID:     *userID,
		Email:      *email,
		Role:       *role,
		TenantSlug: *tenantSlug,
	})
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}
