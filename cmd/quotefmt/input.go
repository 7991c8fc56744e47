package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"quotefmt/internal/config"
)

// maxInputBytes caps how much text is read from a file or stdin.
const maxInputBytes = 16 << 20

var errNoInput = errors.New("no input: pass text as arguments, use --file, or pipe it on stdin")

// readInput resolves the text to process: arguments joined by a space, then
// the --file path, then stdin when it is not an interactive terminal.
func readInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if path := strings.TrimSpace(filePath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return "", fmt.Errorf("resolve input path: %w", err)
		}
		file, err := os.Open(expanded)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		return readLimited(file)
	}

	in := cmd.InOrStdin()
	if isInteractive(in) {
		return "", errNoInput
	}
	return readLimited(in)
}

func readLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if len(data) > maxInputBytes {
		return "", fmt.Errorf("read input: exceeds %d bytes", maxInputBytes)
	}
	return string(data), nil
}

func isInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
