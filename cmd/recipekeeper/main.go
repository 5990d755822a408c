package main

import (
	"context"
	"log"
	"os"

	"recipekeeper/internal/buildinfo"
	"recipekeeper/internal/cli"
	"recipekeeper/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
