package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/benmeehan/journal-client/internal/models"
	"github.com/benmeehan/journal-client/internal/utils"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	// Load the compiled-in configuration
	config, err := utils.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, config, nil)
	stop()
	os.Exit(code)
}

// run executes the command tree and returns the process exit status.
// stdout only carries the command result; diagnostics go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, config *utils.Config, httpClient *http.Client) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(config.LogLevel()).
		With().Timestamp().Logger()

	rootCmd := newRootCmd(config, httpClient, logger)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var apiErr *models.RegistrationError
		if errors.As(err, &apiErr) {
			// The server message is the whole diagnostic
			fmt.Fprintln(stderr, apiErr.Message)
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}

	return 0
}
