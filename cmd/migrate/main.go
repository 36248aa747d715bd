package main

// Run database migrations:
//   go run ./cmd/migrate
// Print migration status:
//   go run ./cmd/migrate -status

import (
	"context"
	"flag"
	"os"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/config"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/db"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
)

func main() {
	status := flag.Bool("status", false, "print migration status instead of applying")
	flag.Parse()
	defer telemetry.Sync()

	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if *status {
		if err := db.MigrationStatus(ctx, sqlDB); err != nil {
			telemetry.Error("migrate.status_failed", map[string]any{"error": err})
			os.Exit(1)
		}
		return
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		os.Exit(1)
	}
	telemetry.Info("migrate.done", nil)
}
