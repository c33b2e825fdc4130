// Command create-admin generates a super admin with random credentials and prints them once.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	domain := flag.String("domain", "example.com", "Email domain of the generated admin")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.NewDBInstance(cfg.Database, nil)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	admins := store.New[model.Admin](db.DB, credential.NewBcryptGuard(cfg.Credential.BcryptCost))

	ctx := context.Background()
	password := generateRandomString(8)
	var admin *model.Admin
	// Retry until a free email is found
	for {
		admin = &model.Admin{
			Credentials:  model.Credentials{Email: "admin_" + generateRandomString(4) + "@" + *domain, Password: password},
			IsSuperAdmin: true,
		}
		err = admins.Create(ctx, admin)
		if !errs.Is(err, errs.KindConflict) {
			break
		}
	}
	if err != nil {
		log.Fatal("failed to create admin: ", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("ID:       %s\n", admin.ID)
	fmt.Printf("Email:    %s\n", admin.Email)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}
