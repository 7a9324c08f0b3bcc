package domain

import (
	"cmp"
	"slices"

	m "github.com/mouse-blink/snitch/internal/model"
)

// Rank returns todos sorted ascending by priority so the most urgent entry
// comes last. Equal priorities keep their input order. The input slice is
// not modified.
func Rank(todos []m.Todo) []m.Todo {
	type keyed struct {
		priority int
		todo     m.Todo
	}

	entries := make([]keyed, len(todos))
	for i, t := range todos {
		entries[i] = keyed{priority: MeasurePriority(t.Message), todo: t}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return cmp.Compare(a.priority, b.priority)
	})

	ranked := make([]m.Todo, len(entries))
	for i, e := range entries {
		ranked[i] = e.todo
	}

	return ranked
}
