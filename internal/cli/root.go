// Package cli provides the command-line interface for Luma.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/version"
)

// NewRootCmd builds the root command and all subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "luma",
		Short: "Photometric luminance and lightness conversions",
		Long: `Luma converts between photometric luminance Y and the perceptual
lightness scales built on top of it.

Luminance can be computed from CIE Lightness L* (CIE 1976) or from a
Munsell value (Newhall 1943, ASTM D1535-08), and the inverse direction
is available through the lightness command (CIE 1976, Glasser 1958,
Wyszecki 1964). Run "luma methods" to list every supported method.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLuminanceCmd())
	rootCmd.AddCommand(newLightnessCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// loggerFromCmd builds an hclog logger honouring the persistent
// verbose/quiet flags. Verbose wins when both are set.
func loggerFromCmd(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if quiet {
		level = hclog.Error
	}
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "luma",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
}
