package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/app"
)

// @title        Document Signing API
// @version      1.0
// @description  RSA key custody, file signing and public signature verification.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
