package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/snitch/internal/adapter"
	"github.com/mouse-blink/snitch/internal/controller"
	controllermocks "github.com/mouse-blink/snitch/internal/controller/mocks"
	"github.com/mouse-blink/snitch/internal/domain"
	domainmocks "github.com/mouse-blink/snitch/internal/domain/mocks"
	m "github.com/mouse-blink/snitch/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_DefaultsToCurrentDirectory(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	swapCollaborators(t, mockWorkflow, mockUI)

	report := m.Report{Todos: []m.Todo{{File: "a.go", Message: "// todo: x", Column: 3}}}

	mockWorkflow.EXPECT().Scan(domain.ScanArgs{Root: ".", Threads: 1}).Return(report, nil)
	mockUI.EXPECT().DisplayReport(report).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_UsesPositionalPath(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	swapCollaborators(t, mockWorkflow, mockUI)

	mockWorkflow.EXPECT().Scan(domain.ScanArgs{Root: "./src", Threads: 1}).Return(m.Report{}, nil)
	mockUI.EXPECT().DisplayReport(m.Report{}).Return(nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"./src"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ScanErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	swapCollaborators(t, mockWorkflow, mockUI)

	boom := errors.New("root path error: boom")
	mockWorkflow.EXPECT().Scan(domain.ScanArgs{Root: "missing", Threads: 1}).Return(m.Report{}, boom)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"missing"})

	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	swapCollaborators(t, mockWorkflow, mockUI)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"a", "b"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("// todooo: second\n// todo: first\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0xfd}, 0o644))

	var out bytes.Buffer
	cmd := newTestRootCmd()
	cmd.SetOut(&out)

	swapCollaborators(t, domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), nil), controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{root})
	require.NoError(t, cmd.Execute())

	mainGo := filepath.Join(root, "main.go")
	assert.Equal(t, mainGo+":1:3\ttodo: first\n"+mainGo+":0:3\ttodooo: second\n", out.String())
}

func TestRootCmd_EndToEndFileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\n// TODOO: single file\n"), 0o644))

	var out bytes.Buffer
	cmd := newTestRootCmd()
	cmd.SetOut(&out)

	swapCollaborators(t, domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), nil), controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, path+":2:3\tTODOO: single file\n", out.String())
}

func TestRootCmd_EndToEndMissingRoot(t *testing.T) {
	cmd := newTestRootCmd()

	swapCollaborators(t, domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), nil), controller.NewSimpleUI(cmd))

	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "snitch [path]" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "snitch [path]")
	}
	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}
	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}
	if cmd.Flags().HasFlags() {
		t.Error("newRootCmd() should not define flags")
	}
}

func newTestRootCmd() *cobra.Command {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func swapCollaborators(t *testing.T, wf domain.Workflow, u controller.UI) {
	t.Helper()

	originalWorkflow, originalUI := workflow, ui
	workflow, ui = wf, u

	t.Cleanup(func() {
		workflow, ui = originalWorkflow, originalUI
	})
}
