package main

import (
	"context"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBrandingCmd())
}

func newBrandingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branding",
		Short: "Run only the default-user branding step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			return brandingStep(e).Run(context.Background())
		},
	}
}
