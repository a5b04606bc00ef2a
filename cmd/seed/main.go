// Seeds the books and cast-member tables from a JSON fixture file.
//
//	go run ./cmd/seed -file seed/data.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"bookcatalog/config"
	"bookcatalog/models"
	"bookcatalog/store"

	"github.com/joho/godotenv"
)

type fixture struct {
	Books       []models.Book       `json:"books"`
	CastMembers []models.CastMember `json:"castMembers"`
}

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "seed/data.json", "path to the seed fixture")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}
	var data fixture
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.NewDynamoDB(ctx, cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretKey,
		cfg.DynamoDBEndpoint, cfg.BooksTable, cfg.CastTable)
	if err != nil {
		log.Fatal("dynamodb:", err)
	}

	if err := db.SeedBooks(ctx, data.Books); err != nil {
		log.Fatalf("seed books: %v", err)
	}
	log.Printf("seeded %d books into %s", len(data.Books), cfg.BooksTable)

	if err := db.SeedCastMembers(ctx, data.CastMembers); err != nil {
		log.Fatalf("seed cast members: %v", err)
	}
	log.Printf("seeded %d cast members into %s", len(data.CastMembers), cfg.CastTable)
}
