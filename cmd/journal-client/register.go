package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benmeehan/journal-client/internal/services"
)

const (
	registerDescription = `Register this device with an organisation.

The device identifier is read from the local machine identifier file and sent
together with the device name and the organisation password.

Examples:
  journal-client register --organisationID acme --name kiosk-1 --organisationpassword s3cret
  journal-client register acme kiosk-1 s3cret`
)

// registerOptions holds the values collected for the register command.
type registerOptions struct {
	organisationID       string
	name                 string
	organisationPassword string
}

// resolve fills options from positional args when given, then checks every value is set.
func (o *registerOptions) resolve(args []string) error {
	if len(args) > 0 {
		if len(args) != 3 {
			return fmt.Errorf("expected 3 positional arguments (organisationID name organisationpassword), got %d", len(args))
		}
		o.organisationID, o.name, o.organisationPassword = args[0], args[1], args[2]
	}

	var missing []string
	if o.organisationID == "" {
		missing = append(missing, "organisationID")
	}
	if o.name == "" {
		missing = append(missing, "name")
	}
	if o.organisationPassword == "" {
		missing = append(missing, "organisationpassword")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required argument(s) %q not set", missing)
	}

	return nil
}

func newRegisterCmd(newService func() *services.RegistrationService) *cobra.Command {
	opts := &registerOptions{}

	cmd := &cobra.Command{
		Use:   "register [organisationID name organisationpassword]",
		Short: "Register a device",
		Long:  registerDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid; later failures are not usage errors
			cmd.SilenceUsage = true

			resp, err := newService().Register(cmd.Context(), opts.organisationID, opts.name, opts.organisationPassword)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Response: %s\n", resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.organisationID, "organisationID", "", "Organisation ID")
	cmd.Flags().StringVar(&opts.name, "name", "", "Name")
	cmd.Flags().StringVar(&opts.organisationPassword, "organisationpassword", "", "Organisation Password")

	return cmd
}
