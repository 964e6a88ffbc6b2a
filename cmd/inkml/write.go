package main

import (
	"github.com/spf13/cobra"

	"github.com/go-inkml/inkml/pkg/api"
)

var writeCmd = &cobra.Command{
	Use:   "write SRC DST",
	Short: "Parse SRC and re-emit it, deduplicating brushes, as DST",
	Args:  cobra.ExactArgs(2),
	RunE:  runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	strokes, err := api.ParseFormattedFile(args[0], appConfig)
	if err != nil {
		return err
	}
	return api.WriteFile(strokes, args[1], appConfig)
}
