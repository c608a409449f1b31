package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// LogOps pages the application log with ov, suspending the TUI
type LogOps struct {
	program *tea.Program
	logPath string
}

// NewLogOps creates a log pager bound to a log file
func NewLogOps(logPath string) *LogOps {
	return &LogOps{logPath: logPath}
}

// SetProgram sets the program reference for terminal management
func (l *LogOps) SetProgram(p *tea.Program) {
	l.program = p
}

// ShowLog opens the log file in the pager
func (l *LogOps) ShowLog() error {
	if l.program == nil {
		return fmt.Errorf("program not set")
	}

	content, err := os.ReadFile(l.logPath)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	if len(content) == 0 {
		content = []byte("(log is empty)\n")
	}

	// Release terminal control to run ov
	if err := l.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay so ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = l.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(string(content)))
	if err != nil {
		return err
	}

	// Don't write pager content on exit, it would mangle our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
