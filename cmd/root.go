// Package cmd provides the root command and CLI setup for snitch.
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/snitch/internal/adapter"
	"github.com/mouse-blink/snitch/internal/controller"
	"github.com/mouse-blink/snitch/internal/domain"
	m "github.com/mouse-blink/snitch/internal/model"
)

var logger *log.Logger
var fsAdapter adapter.SourceFSAdapter
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.InfoLevel,
		Prefix: "snitch",
	})
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, logger)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snitch [path]",
		Short: "List TODO comments ranked by urgency",
		Long: `Snitch walks a directory tree, finds TODO comments in every text file
and prints them sorted by urgency. Urgency is the length of the marker, so
"todoooo" outranks "todo". The most urgent entry is printed last.

A comment counts when a single token (usually the comment marker) and one
space come before the keyword:
  // TODO: fix this         reported
  #  todo: fix this         not reported (two spaces)
  TODO: fix this            not reported (no lead-in token)

Locations are printed as file:line:column with zero-based line and column.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			report, err := workflow.Scan(domain.ScanArgs{
				Root:    m.Path(root),
				Threads: 1,
			})
			if err != nil {
				return err
			}

			return ui.DisplayReport(report)
		},
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
