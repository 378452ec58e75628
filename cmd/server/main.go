// Command server runs the CRM HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/laborcrm-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
