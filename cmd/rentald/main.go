package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Izaek256/CarRental-Server-Client/internal/config"
	"github.com/Izaek256/CarRental-Server-Client/internal/logging"
	"github.com/Izaek256/CarRental-Server-Client/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to server config file (TOML)")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rentald: %v\n", err)
		os.Exit(1)
	}

	svc, err := server.NewService(server.Config{
		ListenAddr:  cfg.ListenAddr,
		AdminAddr:   cfg.AdminAddr,
		ReportsDir:  cfg.ReportsDir,
		CorsOrigins: cfg.CorsOrigins,
	}, log.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rentald: %v\n", err)
		os.Exit(1)
	}

	if err := svc.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rentald: %v\n", err)
		os.Exit(1)
	}
}
