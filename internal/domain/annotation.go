// Package domain contains the annotation detection, ranking and scan workflow.
package domain

import (
	"math"
	"regexp"
	"unicode/utf8"

	m "github.com/mouse-blink/snitch/internal/model"
)

// NoPriority is returned by MeasurePriority for text without a marker.
// It ranks below every real priority.
const NoPriority = math.MinInt

// RE2's \s is ASCII-only; these classes cover the full Unicode White_Space
// set (vertical tab, NEL, NBSP and the other Z separators).
const (
	space    = `[\s\v\x{85}\p{Z}]`
	nonSpace = `[^\s\v\x{85}\p{Z}]`
)

var (
	// todoLinePattern requires a lead-in token and a single whitespace before
	// the keyword, so a bare "TODO: x" line does not qualify.
	todoLinePattern = regexp.MustCompile(`(?i)^` + space + `*(` + nonSpace + `+` + space + `)todo+:?` + space + `(.*)$`)

	// markerPattern is the priority marker: "todo" plus any extra 'o's.
	markerPattern = regexp.MustCompile(`(?i)todo+`)
)

// IsTodoLine reports whether line is a TODO annotation.
func IsTodoLine(line string) bool {
	return todoLinePattern.MatchString(line)
}

// ClassifyLines returns, in ascending order, the rows of lines that are
// TODO annotations.
func ClassifyLines(lines m.Lines) []int {
	var rows []int

	for row, line := range lines {
		if IsTodoLine(line) {
			rows = append(rows, row)
		}
	}

	return rows
}

// MeasurePriority returns the length of the first priority marker in s, or
// NoPriority when s has none.
func MeasurePriority(s string) int {
	loc := markerPattern.FindStringIndex(s)
	if loc == nil {
		return NoPriority
	}

	return utf8.RuneCountInString(s[loc[0]:loc[1]])
}

// markerOffset returns the byte offset of the first priority marker in s.
func markerOffset(s string) (int, bool) {
	loc := markerPattern.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}

	return loc[0], true
}
