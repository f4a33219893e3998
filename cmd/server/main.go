// Package main implements the entry point for the wellbeing API server,
// which tracks users' daily mood check-ins and journal entries.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

// main initializes configuration, logging, the database connection, and
// the service dependencies, then runs the HTTP server until a shutdown
// signal arrives.
func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
