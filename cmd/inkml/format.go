package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-inkml/inkml/pkg/api"
)

var formatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Parse a document and print its canonical (x, y, f) strokes",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	strokes, err := api.ParseFormattedFile(args[0], appConfig)
	if err != nil {
		return err
	}

	for i, s := range strokes {
		fmt.Printf("stroke %d: %d samples, brush %s (#%02X%02X%02X, width %.2fcm)\n",
			i, len(s.Stroke.X), s.Brush.ID,
			s.Brush.Color[0], s.Brush.Color[1], s.Brush.Color[2],
			s.Brush.StrokeWidthCm)
	}
	return nil
}
