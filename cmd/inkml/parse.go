package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-inkml/inkml/pkg/api"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a document and report its raw context/brush/trace tables",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := api.ParseFile(args[0], appConfig)
	if err != nil {
		return err
	}

	fmt.Printf("contexts: %d, brushes: %d, traces: %d\n",
		len(result.Contexts), len(result.Brushes), len(result.Traces))
	return nil
}
