package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-ir/ir"
)

var rootCmd = &cobra.Command{
	Use:   "irtool",
	Short: "Inspect and exercise the wasm-ir expression tree library",
	Long: `irtool builds a demo module covering every expression kind the library
models and lets you dump it, gather statistics over it, or browse it
interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			ir.SetLogger(logger)
		}
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch colorMode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
			color.NoColor = !isTerminal(os.Stdout)
		default:
			return fmt.Errorf("unknown color mode: %s", colorMode)
		}
		return nil
	},
}

func main() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(viewCmd)

	rootCmd.PersistentFlags().Bool("verbose", false, "log module mutations")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
