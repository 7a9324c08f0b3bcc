package model

// Report is the outcome of a scan.
type Report struct {
	// Todos are ranked ascending by priority, most urgent last.
	Todos []Todo
	// Unreadable lists files that failed to read or were not valid UTF-8.
	Unreadable []Path
}
