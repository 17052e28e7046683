package main

import (
	"context"
	"log"

	"github.com/guidolabarca009-sketch/chat-app/internal/cli"
	"github.com/guidolabarca009-sketch/chat-app/internal/config"
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
