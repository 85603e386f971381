package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

// renderJSON pretty-prints v as indented JSON.
func renderJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return pretty.Pretty(raw), nil
}

// writeResult writes data to the --output file when the flag is set and to
// the command's stdout otherwise, colorizing terminal output.
func writeResult(cmd *cobra.Command, data []byte) error {
	if flag := cmd.Flags().Lookup("output"); flag != nil && flag.Value.String() != "" {
		if err := os.WriteFile(flag.Value.String(), data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	if isTerminal(os.Stdout) {
		data = pretty.Color(data, nil)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
