package main

import (
	"context"
	"time"

	"vibehunt/config"
	"vibehunt/database"
	"vibehunt/routes"
	"vibehunt/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// A missing or unreachable store is tolerated: handlers surface it as a
	// server error per request instead of the process refusing to start.
	var store database.Store
	if mongoStore, err := database.Connect(cfg); err != nil {
		utils.Sugar.Warnf("store unavailable, serving without database: %v", err)
	} else {
		store = mongoStore
	}

	if store != nil && cfg.SeedDemo {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.SeedDemo(ctx, store); err != nil {
			utils.Sugar.Warnf("demo seeding failed: %v", err)
		}
		cancel()
	}

	r := routes.SetupRouter(store)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
