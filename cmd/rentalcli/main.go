// rentalcli is a line console over the wire protocol. Type requests as
// ACTION|TABLE|DATA and read the raw response line back.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Izaek256/CarRental-Server-Client/internal/client"
	"github.com/Izaek256/CarRental-Server-Client/internal/config"
	"github.com/Izaek256/CarRental-Server-Client/internal/logging"
	"github.com/Izaek256/CarRental-Server-Client/internal/model"
	"github.com/Izaek256/CarRental-Server-Client/internal/protocol"
)

func main() {
	configPath := flag.String("config", "", "path to client config file (TOML)")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := config.LoadClientConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rentalcli: %v\n", err)
		os.Exit(1)
	}

	ch := client.NewChannel(cfg.ServerAddr, log.Logger)
	defer ch.Close()

	fmt.Printf("target %s; requests are ACTION|TABLE|DATA, blank line quits\n", cfg.ServerAddr)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		switch line {
		case "help":
			fmt.Println("requests: ADD|UPDATE|DELETE|FIND|LIST|REPORT | table | data")
			fmt.Println("shortcuts: help, tables, quit")
			continue
		case "tables":
			fmt.Println(strings.Join(model.Tables(), ", "))
			continue
		case "quit", "exit":
			return
		}

		req, err := protocol.ParseRequest(line)
		if err != nil {
			fmt.Println("invalid request; format is ACTION|TABLE|DATA")
			continue
		}
		resp := ch.Send(req)
		fmt.Println(resp.Encode())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "rentalcli: %v\n", err)
		os.Exit(1)
	}
}
