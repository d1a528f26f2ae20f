package main

import (
	"fmt"
	"io"
	"strings"
)

// Printer receives the output of a command line by line.
type Printer interface {
	PrintLine(line string)
}

// WriterPrinter prints lines to an io.Writer.
type WriterPrinter struct {
	Writer io.Writer
}

// PrintLine implements Printer.
func (p *WriterPrinter) PrintLine(line string) {
	_, _ = fmt.Fprintln(p.Writer, line)
}

// printText prints text one line at a time, without the trailing newline.
func printText(printer Printer, text string) {
	if text == "" {
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		printer.PrintLine(line)
	}
}
