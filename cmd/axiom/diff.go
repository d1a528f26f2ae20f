package main

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff compares two texts line by line. Inserted lines start with '+', removed
// lines with '-' and unchanged lines with a space. Colors are added when stdout is a
// terminal.
func lineDiff(before, after string) []string {
	diffCfg := diffpatch.New()

	from, to, lines := diffCfg.DiffLinesToChars(before, after)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(from, to, false), lines)

	var out []string

	for _, diff := range diffs {
		if diff.Text == "" {
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			switch diff.Type {
			case diffpatch.DiffInsert:
				out = append(out, color.GreenString("+%s", line))
			case diffpatch.DiffDelete:
				out = append(out, color.RedString("-%s", line))
			case diffpatch.DiffEqual:
				out = append(out, " "+line)
			}
		}
	}

	return out
}
