package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jannofresh/jannofresh-api/config"
	"github.com/jannofresh/jannofresh-api/internal/infrastructure/memory"
	"github.com/jannofresh/jannofresh-api/pkg/helpers"
)

// Seeds the demo catalog and a demo customer into postgres. Memory mode
// ships with the same catalog built in, so running this is only needed for
// database-backed deployments.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.MemoryMode() {
		log.Fatal("DATABASE_URL not set; memory mode seeds itself")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, c := range memory.SeedCategories() {
		if _, err := db.Exec(`
			INSERT INTO categories (id, title, image)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, image = EXCLUDED.image
		`, c.ID, c.Title, c.Image); err != nil {
			log.Fatalf("failed to seed category %s: %v", c.ID, err)
		}
	}
	fmt.Printf("seeded %d categories\n", len(memory.SeedCategories()))

	products := memory.SeedProducts()
	for _, p := range products {
		if _, err := db.Exec(`
			INSERT INTO products (id, category_id, title, price, unit, image, description, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				category_id = EXCLUDED.category_id, title = EXCLUDED.title,
				price = EXCLUDED.price, unit = EXCLUDED.unit, image = EXCLUDED.image,
				description = EXCLUDED.description, tags = EXCLUDED.tags,
				updated_at = now()
		`, p.ID, p.CategoryID, p.Title, p.Price, p.Unit, p.Image, p.Description, p.Tags); err != nil {
			log.Fatalf("failed to seed product %s: %v", p.ID, err)
		}
	}
	fmt.Printf("seeded %d products\n", len(products))

	email := "demo@jannofresh.dev"
	password := "password123"
	name := "Demo Customer"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, password, phone, avatar)
		VALUES (gen_random_uuid(), $1, $2, $3, '', $4)
		ON CONFLICT (lower(email)) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.AvatarURL(name)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)
}
