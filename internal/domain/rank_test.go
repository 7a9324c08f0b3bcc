package domain

import (
	"math/rand/v2"
	"strings"
	"testing"

	m "github.com/mouse-blink/snitch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	todos := []m.Todo{
		{File: "test_file.go", Column: 1, Line: 12, Message: "// todooo: fjdklas"},
		{File: "test_file.go", Column: 1, Line: 63, Message: "// todo: fdjskalfhdjasklfhjdasklf"},
		{File: "test_file.go", Column: 1, Line: 42, Message: "// todooooo: fdjsal;fdddd"},
	}

	ranked := Rank(todos)

	require.Len(t, ranked, 3)
	assert.Equal(t, 63, ranked[0].Line)
	assert.Equal(t, 12, ranked[1].Line)
	assert.Equal(t, 42, ranked[2].Line)

	assert.Equal(t, 12, todos[0].Line, "input must not be reordered")
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestRank_MonotonicAndStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	todos := make([]m.Todo, 200)
	for i := range todos {
		todos[i] = m.Todo{
			File:    "f.go",
			Line:    i,
			Message: "// tod" + strings.Repeat("o", 1+rng.IntN(4)) + ": x",
		}
	}

	ranked := Rank(todos)
	require.Len(t, ranked, len(todos))

	for i := 1; i < len(ranked); i++ {
		prev, cur := MeasurePriority(ranked[i-1].Message), MeasurePriority(ranked[i].Message)
		require.LessOrEqual(t, prev, cur)

		if prev == cur {
			require.Less(t, ranked[i-1].Line, ranked[i].Line, "equal priorities keep input order")
		}
	}
}

func TestRank_UnmarkedSortsFirst(t *testing.T) {
	todos := []m.Todo{
		{Line: 0, Message: "// todo: a"},
		{Line: 1, Message: "no marker here"},
	}

	ranked := Rank(todos)

	assert.Equal(t, []int{1, 0}, []int{ranked[0].Line, ranked[1].Line})
}
