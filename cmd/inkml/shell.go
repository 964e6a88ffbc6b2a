package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-inkml/inkml/pkg/inkml/tracedata"
	"github.com/go-inkml/inkml/pkg/inkml/types"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactively decode trace-data payloads against a column spec",
	Long: `shell starts a REPL for exercising the trace-data micro-parser
directly: set a column type spec once (e.g. "integer integer integer" for
an X,Y,F context), then paste payloads to see the decoded samples.

Commands:
  :types <type> [<type> ...]   set the column types (integer|decimal|double|boolean)
  :quit                        leave the shell
any other line is decoded as a trace payload against the current types.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	repl, err := readline.New("inkml> ")
	if err != nil {
		return err
	}
	defer repl.Close()

	columnTypes := []types.ChannelType{types.TypeInteger, types.TypeInteger, types.TypeInteger}
	pterm.Info.Println("decoding against X,Y,F integer columns; :types to change, :quit to leave")

	for {
		line, err := repl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case strings.HasPrefix(line, ":types"):
			ct, err := parseColumnTypes(strings.TrimSpace(strings.TrimPrefix(line, ":types")))
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			columnTypes = ct
			pterm.Success.Printf("columns: %v\n", columnTypes)
		default:
			samples, err := tracedata.Decode(line, columnTypes)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}
			for i, s := range samples {
				printSamples(i, s)
			}
		}
	}

	pterm.Info.Println("goodbye")
	return nil
}

func parseColumnTypes(spec string) ([]types.ChannelType, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("usage: :types <integer|decimal|double|boolean> ...")
	}

	out := make([]types.ChannelType, len(fields))
	for i, f := range fields {
		t, err := types.ParseChannelType(&f)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func printSamples(col int, data types.ChannelData) {
	switch {
	case data.IsInteger():
		fmt.Printf("  column %d (integer): %v\n", col, data.Ints())
	case data.IsBool():
		fmt.Printf("  column %d (bool):    %v\n", col, data.Bools())
	default:
		fmt.Printf("  column %d (double):  %v\n", col, data.Doubles())
	}
}
