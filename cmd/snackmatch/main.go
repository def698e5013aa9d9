package main

import (
	"flag"
	"fmt"
	"log"

	"snackmatch/internal/config"
)

func main() {
	var addr string
	var help bool

	flag.StringVar(&addr, "addr", ":8080", "Address to bind")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := runServer(cfg, addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func showHelp() {
	fmt.Println("SnackMatch - mood-based snack picks with generated imagery")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  snackmatch [-addr :8080]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -addr           Address to bind (default :8080)")
	fmt.Println("  -help, -h       Show this help message")
}
