package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quotefmt/internal/formatter"
	"quotefmt/internal/logging"
)

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "sanitize [text...]",
		Short: "Preview input with '<' and '>' removed and whitespace trimmed",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, filePath)
			if err != nil {
				return err
			}
			if logger, err := ctx.ensureLogger(); err == nil {
				logger.Debug("sanitizing input", logging.Int("bytes", len(input)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Sanitize(input))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read input from a file instead of arguments or stdin")
	return cmd
}
