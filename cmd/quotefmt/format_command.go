package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"quotefmt/internal/formatter"
	"quotefmt/internal/workbench"
)

type formatOutput struct {
	Output          string                `json:"output"`
	UniqueCount     int                   `json:"unique_count"`
	IncludeBrackets bool                  `json:"include_brackets"`
	Tokens          []formatter.TokenStat `json:"tokens,omitempty"`
	Copied          bool                  `json:"copied,omitempty"`
	CopyError       string                `json:"copy_error,omitempty"`
}

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var brackets bool
	var escapeQuotes bool
	var copyOutput bool
	var jsonOutput bool
	var explain bool

	cmd := &cobra.Command{
		Use:   "format [text...]",
		Short: "Deduplicate, quote, and comma-join whitespace separated strings",
		Example: `  quotefmt format OOps P-10000 apple 123 apple
  quotefmt format --brackets < ids.txt
  pbpaste | quotefmt format --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			includeBrackets := cfg.Format.IncludeBrackets
			if cmd.Flags().Changed("brackets") {
				includeBrackets = brackets
			}
			escape := cfg.Format.EscapeQuotes
			if cmd.Flags().Changed("escape-quotes") {
				escape = escapeQuotes
			}
			shouldCopy := cfg.Clipboard.AutoCopy
			if cmd.Flags().Changed("copy") {
				shouldCopy = copyOutput
			}

			input, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			wb, err := ctx.newWorkbench(cmd, escape)
			if err != nil {
				return err
			}

			state, err := wb.Format(cmd.Context(), workbench.State{Input: input, IncludeBrackets: includeBrackets})
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			result := formatOutput{
				Output:          state.Output,
				UniqueCount:     state.UniqueCount,
				IncludeBrackets: state.IncludeBrackets,
			}
			// A failed copy is reported through the workbench toast and log;
			// the formatted result is still written and the command succeeds.
			if shouldCopy && state.Output != "" {
				if err := wb.Copy(cmd.Context(), state); err != nil {
					result.CopyError = err.Error()
				} else {
					result.Copied = true
				}
			}
			if explain {
				result.Tokens = formatter.Explain(input)
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Output)
			if explain && len(result.Tokens) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderTokenTable(result.Tokens))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read input from a file instead of arguments or stdin")
	cmd.Flags().BoolVarP(&brackets, "brackets", "b", false, "Wrap the result in parentheses (default from format.include_brackets)")
	cmd.Flags().BoolVar(&escapeQuotes, "escape-quotes", false, "Double apostrophes inside tokens (default from format.escape_quotes)")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the result to the clipboard (default from clipboard.auto_copy)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show each unique token with its 0-based first index and occurrence count")
	return cmd
}

func renderTokenTable(stats []formatter.TokenStat) string {
	rows := make([][]string, 0, len(stats))
	for i, stat := range stats {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			stat.Token,
			strconv.Itoa(stat.First),
			strconv.Itoa(stat.Count),
		})
	}
	return renderTable(
		[]string{"#", "Token", "First Index", "Count"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	)
}
