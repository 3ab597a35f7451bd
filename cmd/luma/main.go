// Luma - photometric luminance and lightness conversions
//
// Luma converts between photometric luminance Y, CIE Lightness L*, and
// Munsell value V using published colorimetric methods.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/luma/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
