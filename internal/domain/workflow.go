package domain

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/snitch/internal/adapter"
	m "github.com/mouse-blink/snitch/internal/model"
)

// ScanArgs holds the inputs of a scan.
type ScanArgs struct {
	Root m.Path
	// Threads bounds how many files are read and classified at once.
	// Values below 2 scan sequentially.
	Threads int
}

// Workflow defines the scan operation.
type Workflow interface {
	Scan(args ScanArgs) (m.Report, error)
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapter.
// A nil logger discards all output.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, logger *log.Logger) Workflow {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		logger:    logger,
	}
}

// Scan walks root, collects every TODO annotation and ranks them. Files that
// cannot be read as text are listed in Report.Unreadable and otherwise
// ignored. Only a root that cannot be traversed fails the scan.
func (w *workflow) Scan(args ScanArgs) (m.Report, error) {
	root := args.Root
	if root == "" {
		root = "."
	}

	if _, err := w.fsAdapter.FileInfo(root); err != nil {
		return m.Report{}, fmt.Errorf("root path error: %w", err)
	}

	var files []m.Path

	err := w.fsAdapter.Walk(root, func(path m.Path) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return m.Report{}, fmt.Errorf("root path error: %w", err)
	}

	results := make([]fileResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(max(args.Threads, 1))

	for i, path := range files {
		g.Go(func() error {
			results[i] = w.scanFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Report{}, err
	}

	var (
		todos      []m.Todo
		unreadable []m.Path
	)

	for i, res := range results {
		if res.err != nil {
			w.logger.Debug("skipping unreadable file", "path", files[i], "err", res.err)
			unreadable = append(unreadable, files[i])

			continue
		}

		todos = append(todos, res.todos...)
	}

	if len(unreadable) > 0 {
		w.logger.Info("skipped unreadable files", "count", len(unreadable))
	}

	w.logger.Debug("scan finished", "root", root, "files", len(files), "todos", len(todos), "unreadable", len(unreadable))

	return m.Report{
		Todos:      Rank(todos),
		Unreadable: unreadable,
	}, nil
}

// fileResult holds the outcome of scanning a single file.
type fileResult struct {
	todos []m.Todo
	err   error
}

func (w *workflow) scanFile(path m.Path) fileResult {
	lines, err := w.fsAdapter.ReadText(path)
	if err != nil {
		return fileResult{err: err}
	}

	rows := ClassifyLines(lines)
	todos := make([]m.Todo, 0, len(rows))

	for _, row := range rows {
		todos = append(todos, NewTodo(path, row, lines[row]))
	}

	return fileResult{todos: todos}
}
