package main

import (
	"context"
	"log"
	"os"

	"github.com/harborchat/harbor/internal/cli"
)

func main() {
	cfg, err := cli.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	app, err := cli.New(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	runErr := app.Run(context.Background(), os.Args[1:])
	if err := app.Close(); err != nil {
		log.Printf("failed to close token store: %v", err)
	}
	if runErr != nil {
		log.Fatalf("%v", runErr)
	}
}
