// Command admin_seed prints the environment lines that enable admin login.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"grabbber/internal/config"
	"grabbber/internal/services/auth"
)

func main() {
	config.LoadEnv()

	adminEmail := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}
	if len(adminPassword) < 12 {
		log.Fatal("ADMIN_PASSWORD must be at least 12 characters long")
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	fmt.Printf("ADMIN_EMAIL=%s\n", adminEmail)
	// Single quotes keep the $ signs of the bcrypt hash literal in .env files.
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hashedPassword)
}
