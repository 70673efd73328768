package main

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/qrstudio/qr-studio/internal/model"
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	dim    = color.New(color.Faint)
)

// statusText turns a status key such as "too_large" into "too large".
func statusText(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// printStatus writes one status line colored by severity.
func printStatus(w io.Writer, status model.Status) {
	line := statusText(status.Key)
	if status.Detail != "" {
		line += ": " + status.Detail
	}

	switch status.Severity {
	case model.SeverityOK:
		green.Fprintln(w, "✓ "+line)
	case model.SeverityWarning:
		yellow.Fprintln(w, "⚠ "+line)
	case model.SeverityError:
		red.Fprintln(w, "✗ "+line)
	default:
		dim.Fprintln(w, line)
	}
}

func printError(w io.Writer, err error) {
	red.Fprintf(w, "✗ %v\n", err)
}

