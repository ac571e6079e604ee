// Command generate_demo writes a seeded store snapshot into a fresh database.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-seed 42] [-content]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/demo"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/store"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	seed := flag.Int64("seed", 1, "generator seed")
	content := flag.Bool("content", false, "include full book text")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	// Honour the same encryption settings the server will read the snapshot with
	encryptor, err := entrypoint.NewStateEncryptor(config.NewConfig().State)
	if err != nil {
		log.Fatalf("Failed to initialize state encryption: %v", err)
	}

	library := store.New(nil, database.NewStateStore(db, encryptor))
	library.Initialize(demo.NewGenerator(*seed, demo.WithContent(*content)))

	log.Printf("Saved %d users and %d books", len(library.Users()), len(library.Books()))
	log.Println("Demo database generated successfully!")
}
