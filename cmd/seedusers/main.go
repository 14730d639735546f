// cmd/seedusers — resets the demo accounts in an existing inventory database.
// Usage: go run ./cmd/seedusers [-db inventory.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ahmadraza103/IMS/internal/infra"
	"github.com/ahmadraza103/IMS/internal/repository"
)

func main() {
	dbPath := flag.String("db", "inventory.db", "path to the SQLite database file")
	flag.Parse()

	db, err := infra.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer infra.Close(db)

	repo := repository.NewUserRepository(db)
	if err := infra.SeedUsers(context.Background(), repo); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	fmt.Println("demo users seeded: admin/admin123 (Admin), user/user123 (User)")
}
