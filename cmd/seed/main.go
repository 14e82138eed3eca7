// Command seed populates the database with development data.
package main

import (
	"flag"
	"log"

	"github.com/shivshankarkannoujiya/Medium/internal/config"
	"github.com/shivshankarkannoujiya/Medium/internal/database"
	"github.com/shivshankarkannoujiya/Medium/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of users to create")
	numPosts := flag.Int("posts", 30, "number of posts to create")
	clean := flag.Bool("clean", false, "remove existing data before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
