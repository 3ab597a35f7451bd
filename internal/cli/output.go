package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// result describes one completed conversion for output formatting.
type result struct {
	Quantity string  `json:"quantity"`
	Method   string  `json:"method"`
	Input    float64 `json:"input"`
	WhiteRef float64 `json:"white_ref"`
	Value    float64 `json:"value"`

	// Luminance is the photometric side of the conversion, regardless of
	// direction; the preview swatch is rendered from it.
	Luminance float64 `json:"-"`
}

// formatResult renders a conversion result in the requested format.
func formatResult(res result, format string, showPreview bool) (string, error) {
	switch format {
	case "text":
		line := fmt.Sprintf("%.10f", res.Value)
		if showPreview {
			line = luminanceSwatch(res.Luminance, res.WhiteRef, swatchWidth) + " " + line
		}
		return line + "\n", nil
	case "json":
		jsonBytes, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

// writeOutput writes the rendered output to the given file, or to the
// command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
