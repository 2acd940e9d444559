//go:build ignore

// This script prints the stored request and audit log of one storefront session.
// Run with: go run scripts/session_audit.go <session-id> [action_type]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/repository"
	"github.com/wsawebmaster/delivery/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/session_audit.go <session-id> [action_type]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mongodb: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	logs := service.NewLoggingService(repository.NewLogsRepository(db))
	opts := model.LogQueryOptions{SessionID: os.Args[1], Limit: 200}
	if len(os.Args) > 2 {
		opts.ActionType = os.Args[2]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := logs.CountLogs(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "count: %v\n", err)
		os.Exit(1)
	}
	entries, err := logs.QueryLogs(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("session %s: %d entries (showing %d, newest first)\n", opts.SessionID, total, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s %-5s %-16s %s", e.Timestamp.Format(time.RFC3339), e.Level, e.ActionType, e.Message)
		if e.Method != "" {
			line += fmt.Sprintf(" [%s %s %d]", e.Method, e.Path, e.StatusCode)
		}
		if e.Error != "" {
			line += " error=" + e.Error
		}
		fmt.Println(line)
	}
}
