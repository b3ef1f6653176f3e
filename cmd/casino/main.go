package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lucky_slots/internal/app"

	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("app stopped: %v", err)
	}
}
