package cmd

import (
	"fmt"

	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/ui"
	"github.com/spf13/cobra"
)

var convertFormats = []ui.Format{ui.FormatHex, ui.FormatHexa, ui.FormatRGB, ui.FormatRGBA, ui.FormatHSL, ui.FormatHSLA}

// NewConvertCmd returns the `convert <hex>...` command.
func NewConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>...",
		Short: "print a hex color in every supported format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				c, err := color.FromHex(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				for _, f := range convertFormats {
					fmt.Fprintf(out, "%-5s %s\n", f, ui.FormatColor(c, f))
				}
			}
			return nil
		},
	}
}
