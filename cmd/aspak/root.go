// Command aspak packs game assets into bin archives and inspects the result.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	// verbose enables per-asset debug output
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "aspak",
		Short: "Scene asset packer",
		Long: TitleStyle.Render("aspak") + SubtitleStyle.Render(" - scene asset packer") + `

aspak reads scene descriptors (.ntfg files) under an asset root,
packs assets shared by multiple scenes into a common bin and each
scene's exclusive assets into its own bin, and writes a single index
mapping every asset's path hash to its bin and byte range.

` + SubtitleStyle.Render("Examples:") + `
  aspak pack ./Content ./packed     Pack all scenes under ./Content
  aspak inspect packed/shared.bin   Dump a bin's entry table
  aspak inspect packed/assets.idx   Dump the asset index`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newLogger builds the CLI logger; verbose mode surfaces per-asset
// debug lines.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// execute runs the root command; any error exits non-zero.
func execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
