// Command admin-create interactively creates an admin account.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/credential"
	"github.com/alimadkour96/4a8lny/internal/database"
	"github.com/alimadkour96/4a8lny/internal/errs"
	"github.com/alimadkour96/4a8lny/internal/model"
	"github.com/alimadkour96/4a8lny/internal/store"
)

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	v, _ := reader.ReadString('\n')
	return strings.TrimSpace(v)
}

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	super := flag.Bool("super", false, "Create a super admin")
	flag.Parse()

	fmt.Println("Generating admin account")

	reader := bufio.NewReader(os.Stdin)
	email := prompt(reader, "Enter email: ")
	password1 := prompt(reader, "Enter password: ")
	password2 := prompt(reader, "Confirm password: ")

	if password1 != password2 {
		fmt.Println("Passwords do not match.")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.NewDBInstance(cfg.Database, nil)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	admin := &model.Admin{
		Credentials:  model.Credentials{Email: email, Password: password1},
		IsSuperAdmin: *super,
	}
	err = store.New[model.Admin](db.DB, credential.NewBcryptGuard(cfg.Credential.BcryptCost)).
		Create(context.Background(), admin)
	switch {
	case errs.Is(err, errs.KindConflict):
		fmt.Println("Email already taken")
		os.Exit(1)
	case err != nil:
		fmt.Printf("Failed to create admin: %s\n", errs.Message(err))
		os.Exit(1)
	}

	fmt.Printf("Admin %s created with ID %s\n", admin.Email, admin.ID)
}
