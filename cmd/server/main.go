// Package main implements the entry point for the rewrite-api server, which
// rewrites résumé and cover-letter fragments through the Gemini API with
// multi-model fallback.
package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
