package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/m3rciful/classbot/bot/app"
	corecmd "github.com/m3rciful/classbot/core/cmd"
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return app.LoadConfig(path)
		},
		Bootstrap: app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("classbot: %v", err)
	}
}
