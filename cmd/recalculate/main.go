// Command recalculate rebuilds derived study data from the session ledger.
// It is intended to be invoked by an external cron job.
//
// Usage:
//
//	recalculate            all users with sessions or stats
//	recalculate -user ID   a single user
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/internal/app"
	"github.com/heartmarshall/studyhabit-backend/internal/config"
)

func main() {
	userFlag := flag.String("user", "", "recalculate only this user id")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall deadline")
	flag.Parse()

	var userID uuid.UUID
	if *userFlag != "" {
		id, err := uuid.Parse(*userFlag)
		if err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
		userID = id
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.RecalculateBatch(ctx, cfg, logger, userID); err != nil {
		logger.Error("recalculation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
