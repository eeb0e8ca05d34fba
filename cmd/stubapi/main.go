package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/goalline/internal/stubapi"
	"github.com/dmitrijs2005/goalline/internal/stubapi/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := stubapi.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
