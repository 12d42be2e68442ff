package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/benmeehan/journal-client/internal/services"
	"github.com/benmeehan/journal-client/internal/utils"
	"github.com/benmeehan/journal-client/pkg/file"
	"github.com/benmeehan/journal-client/pkg/identity"
)

const appName = "journal-client"

// newRootCmd builds the command tree. httpClient may be nil to use a default client.
func newRootCmd(config *utils.Config, httpClient *http.Client, logger zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Client for the central journal service",
		SilenceErrors: true,
	}

	cmd.AddCommand(newRegisterCmd(func() *services.RegistrationService {
		fileClient := file.NewFileService()
		deviceInfo := identity.NewDeviceInfo(config.Identity.DeviceFile, fileClient)
		return services.NewRegistrationService(
			config.Server.BaseURL,
			config.Server.RegisterPath,
			deviceInfo,
			httpClient,
			logger.With().Str("service", "registration").Logger(),
		)
	}))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}
