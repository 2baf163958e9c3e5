package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd returns the `list` command.
func NewListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, found, err := opts.loadPalettes(cmd.ErrOrStderr())
			if err != nil || !found {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range palettes {
				scheme := "-"
				if s, ok := p.Scheme(); ok {
					scheme = s.Foreground.Hex() + " on " + s.Background.Hex()
				}
				fmt.Fprintf(out, "%s\t%d colors\t%s\t%s\n", p.Name, p.Len(), scheme, p.Filename)
			}
			return nil
		},
	}
}
