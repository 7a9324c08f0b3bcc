// Package model defines the data structures shared by the scanner layers.
package model

// Path represents a file system path.
type Path string

// Lines is the content of a single text file split on '\n', indexed by
// zero-based row number.
type Lines []string
