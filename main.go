package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kastheco/color-palette/cmd"
	"github.com/kastheco/color-palette/log"
)

func main() {
	log.Initialize(false)

	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.ErrorLog.Printf("%v", err)
		log.Close()
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Close()
}
