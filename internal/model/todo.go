package model

// Todo is one annotation found while scanning.
type Todo struct {
	File Path
	// Line is the zero-based row of the annotation in File.
	Line int
	// Column is the zero-based character offset within Message where the
	// priority marker begins.
	Column int
	// Message is the raw matched line, unmodified.
	Message string
}
