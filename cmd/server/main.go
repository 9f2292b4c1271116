// Command server runs the HTTP API: text processing, saved texts,
// vocabulary queries, and auth.
//
// Configuration is read from CONFIG_PATH (YAML) and environment
// variables; DATABASE_DSN and AUTH_JWT_SECRET are required.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wortlab/deutschtext/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("application error: %v", err)
		os.Exit(1)
	}
}
