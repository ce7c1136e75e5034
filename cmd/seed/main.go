package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"go-frameshop/internal/config"
	"go-frameshop/internal/database"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

var defaultCategories = []struct {
	Name      string
	Slug      string
	SortOrder int
}{
	{"Photo Frames", "photo-frames", 1},
	{"Art Frames", "art-frames", 2},
	{"Digital Frames", "digital-frames", 3},
	{"Wall Frames", "wall-frames", 4},
	{"Vintage Frames", "vintage-frames", 5},
}

var defaultSettings = map[string]string{
	"company_name":        "FrameShop",
	"company_logo":        "F",
	"company_description": "Premium photo frames and art frames",
	"company_email":       "contact@frameshop.com",
	"company_phone":       "+91 98765 43210",
	"company_address":     "123 Frame Street, Art District, Mumbai 400001",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg := &database.PostgresDB{DB: db}
	if err := pg.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("Schema ready")

	for _, c := range defaultCategories {
		_, err := db.ExecContext(ctx, `
			INSERT INTO categories (name, slug, sort_order, status)
			VALUES ($1, $2, $3, 'active')
			ON CONFLICT (slug) DO NOTHING`,
			c.Name, c.Slug, c.SortOrder)
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", c.Name, err)
		}
	}
	log.Println("Categories seeded")

	for key, value := range defaultSettings {
		_, err := db.ExecContext(ctx, `
			INSERT INTO settings (setting_key, setting_value)
			VALUES ($1, $2)
			ON CONFLICT (setting_key) DO NOTHING`,
			key, value)
		if err != nil {
			log.Fatalf("Failed to seed setting %q: %v", key, err)
		}
	}
	log.Println("Settings seeded")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Println("ADMIN_PASSWORD not set, using default (change it in production)")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (name, email, password, role, status)
		VALUES ('admin', 'admin@frameshop.com', $1, 'admin', 'active')
		ON CONFLICT (email) DO NOTHING`, string(hashed))
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Println("Admin user seeded")

	log.Println("Seeding complete")
}
