package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/pkg/colorimetry"
)

// methodInfo describes one registered conversion method.
type methodInfo struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Input     string `json:"input"`
	Domain    string `json:"domain"`
}

// allMethods returns every registered method from both registries, luminance
// first, in registry order.
func allMethods() []methodInfo {
	var infos []methodInfo
	for _, m := range colorimetry.LuminanceMethods() {
		input, domain := "Munsell value V", "[0, 10]"
		if m == colorimetry.Luminance1976Method {
			input, domain = "Lightness L*", "[0, 100]"
		}
		infos = append(infos, methodInfo{
			Name:      string(m),
			Direction: "luminance",
			Input:     input,
			Domain:    domain,
		})
	}
	for _, m := range colorimetry.LightnessMethods() {
		infos = append(infos, methodInfo{
			Name:      string(m),
			Direction: "lightness",
			Input:     "luminance Y",
			Domain:    "[0, 100]",
		})
	}
	return infos
}

// newMethodsCmd builds the methods command.
func newMethodsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List supported conversion methods",
		Long: `List every registered conversion method with its direction and the
quantity it expects as input. The nominal domains are documented only;
out-of-domain inputs extrapolate along the underlying formula.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := allMethods()

			switch format {
			case "table", "":
				table := NewTable("METHOD", "DIRECTION", "INPUT", "DOMAIN")
				for _, info := range infos {
					table.AddRow(info.Name, info.Direction, info.Input, info.Domain)
				}
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
				return nil
			case "json":
				jsonBytes, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")

	return cmd
}
