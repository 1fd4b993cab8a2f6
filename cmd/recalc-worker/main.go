// Command recalc-worker consumes recalculation requests published when a
// session's follow-up updates fail, and rebuilds the affected user's stats,
// streak, plans and achievements from the session ledger.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/studyhabit-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunRecalcWorker(ctx); err != nil {
		log.Fatalf("recalc-worker: %v", err)
	}
}
