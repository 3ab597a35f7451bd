package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/pkg/colorimetry"
)

// newLightnessCmd builds the lightness command, the inverse direction of
// the luminance command.
func newLightnessCmd() *cobra.Command {
	var (
		whiteRef    float64
		format      string
		output      string
		showPreview bool
	)
	method := newMethodValue(string(colorimetry.Lightness1976Method), lightnessMethodNames())

	cmd := &cobra.Command{
		Use:   "lightness <luminance>",
		Short: "Compute perceptual lightness from luminance Y",
		Long: `Compute a perceptual lightness value from photometric luminance Y.

The CIE 1976 method yields Lightness L*; Glasser 1958 and Wyszecki 1964
are the older cube-root fits. The reference white luminance applies to
the 1976 method only.

Examples:
  # Luminance to CIE Lightness L*
  luma lightness 10.08

  # The Wyszecki (1964) W* fit
  luma lightness -m "Lightness Wyszecki 1964" 10.08

  # Scale against a measured reference white
  luma lightness -w 95.047 10.08

  # Show a grayscale swatch of the input luminance
  luma lightness --preview 10.08`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid luminance %q: %w", args[0], err)
			}

			logger := loggerFromCmd(cmd)
			logger.Debug("computing lightness",
				"method", method.String(), "luminance", y, "white_ref", whiteRef)

			l, err := colorimetry.Lightness(y, whiteRef, colorimetry.LightnessMethod(method.String()))
			if err != nil {
				return err
			}

			logger.Debug("lightness computed", "lightness", l)

			res := result{
				Quantity:  "lightness",
				Method:    method.String(),
				Input:     y,
				WhiteRef:  whiteRef,
				Value:     l,
				Luminance: y,
			}
			preview := showPreview && output == "" && isTerminal(cmd.OutOrStdout())
			rendered, err := formatResult(res, format, preview)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, rendered)
		},
	}

	cmd.Flags().VarP(method, "method", "m", "computation method (run \"luma methods\" for the full list)")
	cmd.Flags().Float64VarP(&whiteRef, "white", "w", colorimetry.DefaultWhiteRef, "reference white luminance Yn (1976 method only)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&showPreview, "preview", false, "show a grayscale swatch of the input luminance")

	return cmd
}

// lightnessMethodNames returns the lightness method names as plain strings
// for flag validation.
func lightnessMethodNames() []string {
	methods := colorimetry.LightnessMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}
