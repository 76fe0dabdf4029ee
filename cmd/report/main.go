package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"report-service/config"
	"report-service/internal/report"
	"report-service/internal/store"
	"report-service/internal/util"
)

// One-shot console runner: renders the named reports (or all of them) to
// stdout and exits. Usage: report [name ...]
func main() {
	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	db, err := store.NewStore(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	gen := report.NewGenerator(db)
	runner := report.NewRunner(gen)

	ctx := context.Background()

	names := os.Args[1:]
	if len(names) == 0 {
		if err := runner.RunAll(ctx, os.Stdout); err != nil {
			log.Fatalf("Report run failed: %v", err)
		}
		return
	}

	for _, name := range names {
		if _, err := runner.Run(ctx, name, os.Stdout); err != nil {
			log.Fatalf("Report %s failed: %v", name, err)
		}
		fmt.Println()
	}
}
