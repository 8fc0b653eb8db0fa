// Command server runs the Hifz scheduler HTTP API.
package main

import (
	"context"
	"log"
	"os"

	"github.com/heartmarshall/hifz-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
