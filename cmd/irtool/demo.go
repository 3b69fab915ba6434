package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the demo module and dump it",
	Long: `demo builds the in-memory demo module and prints its header followed by
every function body as an indented expression tree.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("func", "", "dump only the named function")
}

func runDemo(cmd *cobra.Command, args []string) error {
	only, err := cmd.Flags().GetString("func")
	if err != nil {
		return fmt.Errorf("read func flag: %w", err)
	}

	m := buildDemoModule()
	out := cmd.OutOrStdout()

	if only != "" {
		f := m.GetFunctionOrNil(only)
		if f == nil {
			return fmt.Errorf("no function named %q", only)
		}
		dumpFunction(out, f)
		return nil
	}

	dumpModuleHeader(out, m)
	for _, f := range m.Functions {
		fmt.Fprintln(out)
		dumpFunction(out, f)
	}
	return nil
}
