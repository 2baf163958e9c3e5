package cmd

import (
	"fmt"

	"github.com/kastheco/color-palette/config"
	"github.com/spf13/cobra"
)

// NewSettingsCmd returns the `settings` command.
func NewSettingsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "print the merged program settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.layout()
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings(l.SettingsFile)
			if err != nil {
				return err
			}
			for _, key := range settings.Keys() {
				value, _ := settings.Get(key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
			}
			return nil
		},
	}
}
