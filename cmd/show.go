package cmd

import (
	"fmt"

	"github.com/kastheco/color-palette/ui"
	"github.com/spf13/cobra"
)

// NewShowCmd returns the `show <palette>` command.
func NewShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <palette>",
		Short: "print the colors of one palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			palettes, found, err := opts.loadPalettes(cmd.ErrOrStderr())
			if err != nil || !found {
				return err
			}
			p, ok := findPalette(palettes, args[0])
			if !ok {
				return fmt.Errorf("palette %q not found", args[0])
			}

			theme := ui.DefaultTheme
			if s, ok := p.Scheme(); ok {
				theme = ui.NewTheme(s)
			} else if s := opts.fallbackScheme(); s != nil {
				theme = ui.NewTheme(*s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPalette(p, theme, -1, f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "hex", "value format: hex, hexa, rgb, rgba, hsl or hsla")
	return cmd
}
