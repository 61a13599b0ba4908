package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/yosys"
)

var validateCmd = &cobra.Command{
	Use:   "validate <design.json>",
	Short: "Validate a Yosys JSON document against the expected schema",
	Long: `Check the shape of a Yosys JSON document without reconstructing it:
object structure, port directions, and bit array contents are verified
against an embedded CUE schema.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yosys.Validate(data); err != nil {
		return err
	}

	fmt.Printf("%s: document is valid\n", args[0])
	return nil
}
