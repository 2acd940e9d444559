//go:build ignore

// This script resolves postal codes against ViaCEP and the configured delivery zones.
// Run with: go run scripts/check_cep.go 14050-490 01001000
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/delivery"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/check_cep.go <cep>...")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	zones, err := delivery.ParseZones(cfg.Delivery.Zones)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DELIVERY_ZONES: %v\n", err)
		os.Exit(1)
	}
	resolver := delivery.NewResolver(delivery.NewViaCEPClient(cfg.Delivery.ViaCEPBaseURL), zones)

	failed := false
	for _, raw := range os.Args[1:] {
		code, ok := delivery.NormalizePostalCode(raw)
		if !ok {
			fmt.Printf("%-10s invalid\n", raw)
			failed = true
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		zone, err := resolver.Resolve(ctx, code)
		cancel()

		switch {
		case err == nil:
			fmt.Printf("%-10s served   %s (fee %s)\n", code, zone.AddressPrefix, zone.Fee.StringFixed(2))
		case errors.Is(err, delivery.ErrUndeliverable):
			fmt.Printf("%-10s outside  %v\n", code, err)
		default:
			fmt.Printf("%-10s error    %v\n", code, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
