package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-arrower/users"
)

func newStatusCmd(di *users.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the status and configuration of the application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(di.Status()); err != nil {
				return fmt.Errorf("could not print status: %w", err)
			}

			return nil
		},
	}
}
