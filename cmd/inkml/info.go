package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-inkml/inkml/pkg/api"
	"github.com/go-inkml/inkml/pkg/inkml/canon"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print a colored summary table of a document's strokes",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	result, err := api.ParseFile(args[0], appConfig)
	if err != nil {
		pterm.Error.Printf("parsing %s: %v\n", args[0], err)
		return err
	}

	strokes, err := canon.Canonicalize(result)
	if err != nil {
		pterm.Error.Printf("canonicalizing %s: %v\n", args[0], err)
		return err
	}

	pterm.DefaultSection.Println(args[0])

	rows := pterm.TableData{{"#", "samples", "brush", "color", "width (cm)"}}
	for i, s := range strokes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", len(s.Stroke.X)),
			s.Brush.ID,
			fmt.Sprintf("#%02X%02X%02X", s.Brush.Color[0], s.Brush.Color[1], s.Brush.Color[2]),
			fmt.Sprintf("%.2f", s.Brush.StrokeWidthCm),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
