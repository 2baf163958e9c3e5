package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	termcolor "github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/kastheco/color-palette/color"
	"github.com/kastheco/color-palette/config"
	"github.com/kastheco/color-palette/log"
	"github.com/kastheco/color-palette/palette"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configDir string
}

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           config.ProgramName,
		Short:         "color-palette - browse color palettes defined in TOML files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "",
		"config root (default $XDG_CONFIG_HOME/color-palette or ~/.config/color-palette)")

	root.AddCommand(NewListCmd(opts))
	root.AddCommand(NewShowCmd(opts))
	root.AddCommand(NewConvertCmd())
	root.AddCommand(NewSettingsCmd(opts))
	root.AddCommand(NewDumpCmd(opts))
	root.AddCommand(NewBrowseCmd(opts))
	return root
}

// layout resolves the config root and makes sure it exists. A .env file in
// the working directory is honored for XDG_CONFIG_HOME.
func (o *rootOptions) layout() (config.Layout, error) {
	_ = godotenv.Load()

	root := o.configDir
	if root == "" {
		var err error
		if root, err = config.DefaultRoot(); err != nil {
			return config.Layout{}, err
		}
	}
	l, err := config.EnsureLayout(root)
	if err != nil {
		return l, fmt.Errorf("prepare config dir: %w", err)
	}
	return l, nil
}

// loadPalettes loads every palette. found is false, with a nil error, when
// there are none; a hint has then been written to w.
func (o *rootOptions) loadPalettes(w io.Writer) (palettes []*palette.Palette, found bool, err error) {
	l, err := o.layout()
	if err != nil {
		return nil, false, err
	}
	palettes, err = config.LoadPalettes(l.Root)
	if errors.Is(err, config.ErrNoPalettes) {
		termcolor.New(termcolor.FgYellow).Fprintf(w, "no palettes found; add *.toml files to %s\n", l.PalettesDir)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load palettes: %w", err)
	}
	return palettes, true, nil
}

// fallbackScheme reads the default foreground/background from the settings
// file. It is nil when either value is not a valid color.
func (o *rootOptions) fallbackScheme() *palette.Scheme {
	l, err := o.layout()
	if err != nil {
		log.WarningLog.Printf("settings unavailable: %v", err)
		return nil
	}
	settings, err := config.LoadSettings(l.SettingsFile)
	if err != nil {
		log.WarningLog.Printf("settings unavailable: %v", err)
		return nil
	}

	fgHex, _ := settings.Get(config.KeyForeground)
	bgHex, _ := settings.Get(config.KeyBackground)
	fg, err := color.FromHex(fgHex)
	if err != nil {
		log.WarningLog.Printf("settings foreground: %v", err)
		return nil
	}
	bg, err := color.FromHex(bgHex)
	if err != nil {
		log.WarningLog.Printf("settings background: %v", err)
		return nil
	}
	return &palette.Scheme{Foreground: fg.Opaque(), Background: bg.Opaque()}
}

// findPalette matches name exactly first, then ignoring case.
func findPalette(palettes []*palette.Palette, name string) (*palette.Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range palettes {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}
