package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/snitch/internal/domain"
	m "github.com/mouse-blink/snitch/internal/model"
)

// SimpleUI prints one rendered todo per line, the format meant for pipes and
// editors that jump to file:line:column.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the ranked todos. An empty report prints nothing.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	for _, todo := range report.Todos {
		if _, err := fmt.Fprintln(s.cmd.OutOrStdout(), domain.Render(todo)); err != nil {
			return err
		}
	}

	return nil
}
