package main

import (
	"io"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.FgYellow, color.Bold)
)

// UI helpers. Color is dropped automatically when w is not a terminal.

func PrintInfo(w io.Writer, format string, a ...interface{}) {
	infoColor.Fprintf(w, "i "+format+"\n", a...)
}

func PrintSuccess(w io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(w, "ok "+format+"\n", a...)
}

func PrintWarning(w io.Writer, format string, a ...interface{}) {
	warningColor.Fprintf(w, "! "+format+"\n", a...)
}

func PrintError(w io.Writer, format string, a ...interface{}) {
	errorColor.Fprintf(w, "x "+format+"\n", a...)
}

func PrintHeader(w io.Writer, title string) {
	headerColor.Fprintf(w, "\n=== %s ===\n", title)
}
