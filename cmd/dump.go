package cmd

import (
	"fmt"

	"github.com/kastheco/color-palette/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewDumpCmd returns the `dump` command, which prints the merged palettes.
func NewDumpCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print all merged palettes as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes, found, err := opts.loadPalettes(cmd.ErrOrStderr())
			if err != nil || !found {
				return err
			}

			doc := make(map[string]map[string]color.Color, len(palettes))
			for _, p := range palettes {
				colors := make(map[string]color.Color, p.Len())
				p.Each(func(label string, c color.Color) bool {
					colors[label] = c
					return true
				})
				doc[p.Name] = colors
			}

			var data []byte
			switch format {
			case "toml":
				data, err = toml.Marshal(doc)
			case "yaml":
				data, err = yaml.Marshal(doc)
			default:
				return fmt.Errorf("unknown dump format %q", format)
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	return cmd
}
