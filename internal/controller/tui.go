package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/mouse-blink/snitch/internal/domain"
	m "github.com/mouse-blink/snitch/internal/model"
)

// TUI prints the same lines as SimpleUI with the location and the priority
// marker highlighted. Skipped files are listed on the error stream.
type TUI struct {
	output        io.Writer
	errOutput     io.Writer
	locationStyle lipgloss.Style
	markerStyle   lipgloss.Style
}

// NewTUI creates a new TUI.
func NewTUI(output, errOutput io.Writer) *TUI {
	renderer := lipgloss.NewRenderer(output)

	return &TUI{
		output:        output,
		errOutput:     errOutput,
		locationStyle: renderer.NewStyle().Faint(true),
		markerStyle:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// DisplayReport prints one styled record per line, most urgent last.
func (t *TUI) DisplayReport(report m.Report) error {
	for _, todo := range report.Todos {
		marker := domain.Marker(todo)
		rest := strings.TrimPrefix(domain.Body(todo), marker)

		line := t.locationStyle.Render(domain.Location(todo)) + "\t" + t.markerStyle.Render(marker) + rest
		if _, err := fmt.Fprintln(t.output, line); err != nil {
			return err
		}
	}

	if len(report.Unreadable) > 0 {
		t.displayUnreadable(report.Unreadable)
	}

	return nil
}

func (t *TUI) displayUnreadable(paths []m.Path) {
	table := tablewriter.NewWriter(t.errOutput)
	table.SetHeader([]string{"Skipped file"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, path := range paths {
		table.Append([]string{string(path)})
	}

	table.SetFooter([]string{fmt.Sprintf("%d not valid UTF-8 text or unreadable", len(paths))})
	table.Render()
}
