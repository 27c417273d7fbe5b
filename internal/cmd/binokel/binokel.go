// Package binokel parses scoring service flags and launches the service.
package binokel

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/mrsnaggls2/binokel/internal/platform/cmd"
	server "github.com/mrsnaggls2/binokel/internal/services/scoring/app"
)

// Config holds scoring command configuration.
type Config struct {
	Port   int    `env:"BINOKEL_PORT" envDefault:"8080"`
	Addr   string `env:"BINOKEL_ADDR"`
	DBPath string `env:"BINOKEL_DB_PATH" envDefault:"binokel.db"`
}

// ListenAddr resolves the HTTP listen address: Addr wins when set,
// otherwise the port binds on all interfaces.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Addr); addr != "" {
		return addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The scoring HTTP server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The scoring HTTP listen address (overrides port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database file path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the scoring HTTP API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScoring, func(context.Context) error {
		srv, err := server.NewServer(server.Config{
			Addr:   cfg.ListenAddr(),
			DBPath: cfg.DBPath,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}
