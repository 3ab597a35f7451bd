package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// luminanceSwatch returns an ANSI-coloured grey block approximating the
// given luminance relative to the reference white. The linear ratio is
// encoded through the sRGB transfer curve so the block sits perceptually
// where the value does.
func luminanceSwatch(y, yn float64, width int) string {
	if width <= 0 {
		width = swatchWidth
	}

	t := y / yn
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	// Linear-light to sRGB encoding.
	var v float64
	if t <= 0.0031308 {
		v = 12.92 * t
	} else {
		v = 1.055*math.Pow(t, 1/2.4) - 0.055
	}
	g := uint8(math.Round(v * 255))

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, g, g, g, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// isTerminal reports whether the writer is an interactive terminal able to
// render ANSI escape sequences.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
