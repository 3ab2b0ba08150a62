package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	migrationsPath := findMigrationsDir()
	if migrationsPath == "" {
		log.Fatal("Migrations directory not found")
	}
	absMigrationsPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.New(
		"file://"+absMigrationsPath,
		dbUrl,
	)
	if err != nil {
		log.Fatal(err)
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if cmd == "down" {
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatal(err)
		}
		log.Println("Migration down successful")
	} else {
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatal(err)
		}
		log.Println("Migration up successful")
	}
}

// findMigrationsDir walks up from the working directory so the tool works
// from the repo root or any subdirectory.
func findMigrationsDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	current := cwd
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(current, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return ""
}
