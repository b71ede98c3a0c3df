package main

import (
	"microshop/internal/config"
	"microshop/internal/gateway"
	"microshop/internal/server"
	"microshop/pkg/logger"
)

func main() {
	cfg, err := config.LoadGateway()
	log := logger.New("gateway", cfg.Env)
	if err != nil {
		log.WithError(err).Fatal("failed to load gateway configuration")
	}

	app := gateway.New(cfg, log)

	server.Run(app, cfg.Port, log)
}
