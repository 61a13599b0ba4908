package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/itchyny/gojq"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <design.json> <jq-expression>",
	Short: "Run a jq expression over the raw document",
	Long: `Evaluate a jq expression against the raw Yosys JSON document, before
any reconstruction. Useful for ad-hoc inspection of large netlists.

Examples:
  onv query design.json '.modules | keys'
  onv query design.json '.modules[].cells | length'
  onv query design.json '.modules.top.netnames | keys'`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	query, err := gojq.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid jq expression: %w", err)
	}

	var document interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	iter := query.Run(document)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query failed: %w", err)
		}

		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}

	return nil
}
