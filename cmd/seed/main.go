package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/ghardekho-api/config"
	pginfra "github.com/oksasatya/ghardekho-api/internal/infrastructure/postgres"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
		DSN:         cfg.PostgresDSN(),
		MaxConns:    2,
		MinConns:    1,
		MaxConnLife: cfg.DBMaxConnLife,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	hash, err := helpers.HashPassword(seed.DemoPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	f := seed.Demo(hash)
	if err := pginfra.Seed(ctx, pool, f); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	for _, u := range f.Users {
		fmt.Printf("seeded user: id=%s email=%s role=%s password=%s\n", u.ID, u.Email, u.Role, seed.DemoPassword)
	}
	fmt.Printf("seeded %d properties and %d saved links\n", len(f.Properties), len(f.Saved))
}
