package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "onv",
	Short: "OpenTraceNetlist - Yosys netlist reconstruction tools",
	Long: `OpenTraceNetlist (onv) reconstructs signal-level netlist graphs from
Yosys JSON output: named multi-bit wires with one driver and their
consumers, with split/join nodes synthesized where bit ranges do not
line up.

Examples:
  onv info design.json                # Module and path summary
  onv paths design.json --net data    # List reconstructed paths
  onv validate design.json            # Check document shape
  onv query design.json '.modules|keys'  # Ad-hoc jq query`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
