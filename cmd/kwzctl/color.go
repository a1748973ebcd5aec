package main

import (
	"os"

	"golang.org/x/term"

	"github.com/joshuapare/kwzverify/pkg/kwz"
)

// ANSI color codes.
const (
	colorRed   = "\033[0;31m"
	colorGreen = "\033[0;32m"
	colorDim   = "\033[2m"
	colorReset = "\033[0m"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// textStyle colors text output only when stdout is a terminal.
func textStyle() kwz.Style {
	if noColor || os.Getenv("NO_COLOR") != "" || !isTerminal() {
		return kwz.Style{}
	}
	return kwz.Style{Valid: colorGreen, Invalid: colorRed, Dim: colorDim, Reset: colorReset}
}
