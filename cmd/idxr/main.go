package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/data"
	"virtual-product-studio/api/pkg/indexer"
	"virtual-product-studio/api/pkg/util"

	"go.uber.org/zap"
)

func main() {
	var (
		action      = flag.String("action", "create", "Action: create, drop, list, stats, seed, migrate, rollback, status")
		uri         = flag.String("uri", "", "MongoDB URI (defaults to env DATABASE_URL)")
		dbName      = flag.String("db", "", "Database name (defaults to env DB_NAME)")
		collection  = flag.String("collection", "", "Collection name (for list/stats)")
		target      = flag.String("target", "", "Migration version to roll back to (rollback)")
		timeout     = flag.Duration("timeout", 60*time.Second, "Operation timeout")
		continueErr = flag.Bool("continue-on-error", true, "Continue on error")
		skipExists  = flag.Bool("skip-if-exists", true, "Skip existing indexes")
		jsonOutput  = flag.Bool("json", false, "Output in JSON format")
		logLevel    = flag.String("log-level", "warn", "Log level")
	)
	flag.Parse()

	logger, err := util.InitLogger(*logLevel)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	mongoURI := *uri
	if mongoURI == "" {
		mongoURI = os.Getenv("DATABASE_URL")
		if mongoURI == "" {
			mongoURI = "mongodb://localhost:27017"
		}
	}

	database := *dbName
	if database == "" {
		database = os.Getenv("DB_NAME")
		if database == "" {
			logger.Fatal("Database name required (use -db flag or DB_NAME env var)")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := util.ConnectDB(ctx, mongoURI)
	if err != nil {
		logger.Fatal("mongo unavailable", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect", zap.Error(err))
		}
	}()

	db := client.Database(database)

	opts := &indexer.Options{
		Timeout:         *timeout,
		ContinueOnError: *continueErr,
		SkipIfExists:    *skipExists,
	}

	manager := indexer.CatalogIndexes(indexer.NewManager(db, opts))
	snapshot := indexer.CatalogSnapshot{
		Products:   data.Products(),
		Categories: data.Categories(),
		Reviews:    data.Reviews(),
	}
	migrations := indexer.NewMigrationManager(db)
	for _, m := range indexer.CatalogMigrations(snapshot, opts) {
		migrations.AddMigration(m)
	}

	runCtx, runCancel := context.WithTimeout(context.Background(), *timeout)
	defer runCancel()

	switch *action {
	case "create":
		if !*jsonOutput {
			fmt.Printf("Creating indexes in database: %s\n", database)
		}

		result, err := manager.Create(runCtx)
		if *jsonOutput {
			outputJSON(map[string]any{
				"success": err == nil,
				"result":  result,
				"error":   errorString(err),
			})
			return
		}
		if err != nil {
			logger.Warn("Index creation completed with errors", zap.Error(err))
		}
		fmt.Printf("\nResults:\n")
		fmt.Printf("  Success: %d\n", result.SuccessCount)
		fmt.Printf("  Skipped: %d\n", result.SkippedCount)
		fmt.Printf("  Failed: %d\n", result.FailedCount)
		fmt.Printf("  Duration: %v\n", result.Duration)
		if len(result.Failures) > 0 {
			fmt.Printf("\nFailures:\n")
			for _, f := range result.Failures {
				fmt.Printf("  - %s.%s: %v\n", f.Collection, f.IndexName, f.Error)
			}
		}

	case "drop":
		collections := flag.Args()
		err := manager.Drop(runCtx, collections...)
		if *jsonOutput {
			outputJSON(map[string]any{
				"success": err == nil,
				"error":   errorString(err),
			})
			return
		}
		if err != nil {
			logger.Fatal("Failed to drop indexes", zap.Error(err))
		}
		fmt.Println("Indexes dropped successfully")

	case "list":
		if *collection == "" {
			logger.Fatal("Collection name required for list action (-collection flag)")
		}

		indexes, err := manager.List(runCtx, *collection)
		if err != nil {
			logger.Fatal("Failed to list indexes", zap.Error(err))
		}
		if *jsonOutput {
			outputJSON(indexes)
			return
		}
		fmt.Printf("Indexes for collection %s:\n", *collection)
		for _, idx := range indexes {
			if name, ok := idx["name"].(string); ok {
				fmt.Printf("  - %s\n", name)
				if key, ok := idx["key"]; ok {
					fmt.Printf("    Keys: %v\n", key)
				}
			}
		}

	case "stats":
		stats := map[string][]indexer.IndexStats{}
		if *collection == "" {
			stats, err = manager.StatsAll(runCtx)
		} else {
			stats[*collection], err = manager.Stats(runCtx, *collection)
		}
		if err != nil {
			logger.Fatal("Failed to get stats", zap.Error(err))
		}
		if *jsonOutput {
			outputJSON(stats)
			return
		}
		for coll, collStats := range stats {
			fmt.Printf("\n=== %s ===\n", coll)
			for _, stat := range collStats {
				fmt.Printf("  %s:\n", stat.Name)
				fmt.Printf("    Accesses: %d\n", stat.Accesses)
				fmt.Printf("    Since: %v\n", stat.Since)
				if stat.Building {
					fmt.Printf("    Status: BUILDING\n")
				}
			}
		}

	case "seed":
		result, err := indexer.SeedCatalog(runCtx, db, snapshot)
		if *jsonOutput {
			outputJSON(map[string]any{
				"success": err == nil,
				"result":  result,
				"error":   errorString(err),
			})
			return
		}
		if err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		fmt.Printf("Seeded %s: %d, %s: %d, %s: %d\n",
			common.PRODUCT_COLLECTION, result.Products,
			common.CATEGORY_COLLECTION, result.Categories,
			common.REVIEW_COLLECTION, result.Reviews)

	case "migrate":
		if err := migrations.Run(runCtx); err != nil {
			logger.Fatal("Migration failed", zap.Error(err))
		}
		fmt.Printf("Applied migrations: %v\n", migrations.Versions())

	case "rollback":
		if err := migrations.Rollback(runCtx, *target); err != nil {
			logger.Fatal("Rollback failed", zap.Error(err))
		}
		fmt.Printf("Rolled back to %q\n", *target)

	case "status":
		statuses, err := migrations.Status(runCtx)
		if err != nil {
			logger.Fatal("Failed to read migration status", zap.Error(err))
		}
		if *jsonOutput {
			outputJSON(statuses)
			return
		}
		for _, s := range statuses {
			fmt.Printf("  %s  applied=%v  success=%v\n", s.Version, s.AppliedAt.Format(time.RFC3339), s.Success)
		}

	default:
		fmt.Printf("Unknown action: %s\n", *action)
		fmt.Println("Available actions: create, drop, list, stats, seed, migrate, rollback, status")
		os.Exit(1)
	}
}

func outputJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		log.Fatal("Failed to encode JSON:", err)
	}
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
