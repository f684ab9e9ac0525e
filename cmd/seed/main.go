package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mohammadsaqib2064/onyx-aura/config"
	"github.com/mohammadsaqib2064/onyx-aura/internal/db"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

// Seeds the launch catalog and the admin and demo accounts. Destructive:
// wipes products, reviews and users first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Print("This wipes existing products, reviews and users. Proceed? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seed cancelled.")
		os.Exit(0)
	}

	if err := db.Seed(&cfg.Seed); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("Database seeded successfully!")
}
