// Package main starts the Binokel score-tracking service.
//
// This process owns the HTTP API and the SQLite score sheet so rounds,
// totals, and game results are recorded in one place.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	binokelcmd "github.com/mrsnaggls2/binokel/internal/cmd/binokel"
)

func main() {
	cfg, err := binokelcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BINOKEL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := binokelcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
