package main

import (
	"context"
	"log"

	"github.com/MustafaTekin48/marine-field-app/internal/client/cli"
	"github.com/MustafaTekin48/marine-field-app/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
