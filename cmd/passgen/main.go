// Binary passgen generates random passwords that contain every selected
// character class, interactively or from flags.
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/cli"
	"github.com/vaultpass/passgen-go/internal/config"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	slog.Debug("starting", "env", cfg.Env, "max_count", cfg.MaxCount, "max_length", cfg.MaxLength)

	if err := cli.RootCmd(cfg).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		slog.Debug("exiting", "error", err)
		os.Exit(1)
	}
}
