package domain

import (
	"fmt"
	"unicode/utf8"

	m "github.com/mouse-blink/snitch/internal/model"
)

// NewTodo builds the record for an annotation found at row line of file.
// It panics if message has no priority marker; callers only pass lines that
// IsTodoLine accepted, whose grammar implies one.
func NewTodo(file m.Path, line int, message string) m.Todo {
	offset, ok := markerOffset(message)
	if !ok {
		panic(fmt.Sprintf("snitch: classified line %s:%d has no priority marker: %q", file, line, message))
	}

	return m.Todo{
		File:    file,
		Line:    line,
		Column:  utf8.RuneCountInString(message[:offset]),
		Message: message,
	}
}

// Location formats the zero-based file:line:column coordinates of t.
func Location(t m.Todo) string {
	return fmt.Sprintf("%s:%d:%d", t.File, t.Line, t.Column)
}

// Body returns the message from the priority marker onward, dropping the
// lead-in token.
func Body(t m.Todo) string {
	offset, ok := markerOffset(t.Message)
	if !ok {
		panic(fmt.Sprintf("snitch: todo %s has no priority marker: %q", Location(t), t.Message))
	}

	return t.Message[offset:]
}

// Render produces the report line for t.
func Render(t m.Todo) string {
	return Location(t) + "\t" + Body(t)
}

// Marker returns the priority marker of t as written in the message.
func Marker(t m.Todo) string {
	return markerPattern.FindString(t.Message)
}
