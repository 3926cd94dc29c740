// Command generate_demo creates a fresh catalog filled with sample books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-count 50]
package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/demo"
	"github.com/mrlokans/shelf/internal/entities"
	"github.com/mrlokans/shelf/internal/logging"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// classics are always present so the demo has recognisable rows to search for.
var classics = []entities.Book{
	{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597", Genre: "Sci-Fi", PublicationYear: "1965"},
	{Title: "Emma", Author: "Jane Austen", ISBN: "0141439580", Genre: "Romance", PublicationYear: "1815"},
	{Title: "Meditations", Author: "Marcus Aurelius", ISBN: "0812968255", Genre: "Philosophy", PublicationYear: "180"},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	count := flag.Int("count", demo.DefaultSampleCount, "number of generated sample books")
	flag.Parse()

	logger, err := logging.New("-", "info")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	log.Infof("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, database.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := db.Books()

	for i := range classics {
		if err := repo.Insert(ctx, &classics[i]); err != nil {
			log.Warnw("Failed to save book", "title", classics[i].Title, zap.Error(err))
			continue
		}
		log.Infof("Saved: %s by %s", classics[i].Title, classics[i].Author)
	}

	if err := repo.InsertMany(ctx, demo.NewGenerator().Generate(*count)); err != nil {
		log.Fatalf("Failed to save sample books: %v", err)
	}

	log.Infof("Demo database generated successfully with %d books!", len(classics)+*count)
}
