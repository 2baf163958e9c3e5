package cmd

import (
	"github.com/kastheco/color-palette/ui"
	"github.com/spf13/cobra"
)

// NewBrowseCmd returns the `browse` command, the interactive viewer.
func NewBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "browse palettes interactively and copy colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, found, err := opts.loadPalettes(cmd.ErrOrStderr())
			if err != nil || !found {
				return err
			}
			return ui.NewBrowser(palettes, opts.fallbackScheme()).Run()
		},
	}
}
