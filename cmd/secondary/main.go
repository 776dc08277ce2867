package main

import (
	"context"
	"log"

	"github.com/mlajnef/rpc-messenger/internal/secondary"
	"github.com/mlajnef/rpc-messenger/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := secondary.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
