// Command-line tool to clean the database by dropping all tables in the public schema.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alimadkour96/4a8lny/internal/config"
	"github.com/alimadkour96/4a8lny/internal/database"
)

// dropAll drops every table of the public schema.
const dropAll = `
DO $$
	DECLARE
		r RECORD;
	BEGIN
		FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public') LOOP
			EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
		END LOOP;
	END $$;
`

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	yes := flag.Bool("yes", false, "Skip the confirmation prompt")
	flag.Parse()

	if !*yes {
		// Warning message
		fmt.Println("WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.")
		fmt.Println("This action is irreversible. Do you want to continue? (yes/no): ")

		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		if strings.TrimSpace(strings.ToLower(input)) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.NewDBInstance(cfg.Database, nil)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	if err := db.Exec(dropAll).Error; err != nil {
		log.Fatalf("failed to execute drop command: %v", err)
	}

	fmt.Println("All tables dropped successfully.")
}
