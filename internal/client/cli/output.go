package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgCyan)
	mutedColor   = color.New(color.FgHiBlack)
)

func printError(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, errorColor.Sprint("✗ "+msg))
}

func printSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, successColor.Sprint("✓ "+msg))
}

func printInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, infoColor.Sprint(msg))
}
