package controller

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/routelint/internal/model"
)

// ErrSessionStarted is returned by Start on a TUI that is already running.
var ErrSessionStarted = errors.New("tui already started")

// TUI implements Session using Bubble Tea for the interactive watch screen.
type TUI struct {
	cfg     Config
	output  io.Writer
	input   io.Reader
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a TUI drawing on the command's output and reading keys
// from its input.
func NewTUI(cmd *cobra.Command, options ...Option) *TUI {
	return &TUI{cfg: newConfig(options...), output: cmd.OutOrStdout(), input: cmd.InOrStdin()}
}

// Start runs the program in the background. onExit is called once the
// program has stopped.
func (t *TUI) Start(onExit func()) error {
	return t.startWithModel(newWatchModel(t.cfg), onExit)
}

func (t *TUI) startWithModel(model tea.Model, onExit func()) error {
	if t.program != nil {
		return ErrSessionStarted
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, t.err = t.program.Run()

		if onExit != nil {
			onExit()
		}
	}()

	return nil
}

// Close stops the program, waits for the terminal to be restored and
// returns the error the program ended with.
func (t *TUI) Close() error {
	if t.program == nil {
		return nil
	}

	t.program.Quit()
	<-t.done

	return t.err
}

// send forwards msg to the running program. It is a no-op before Start
// and returns at once after the program has stopped.
func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

// DisplayReport shows the broken groups in the list.
func (t *TUI) DisplayReport(report m.BrokenLinkReport) (bool, error) {
	t.send(reportMsg{report: report})

	return report.HasBroken(), nil
}

// DisplayRoutes records the declared route count.
func (t *TUI) DisplayRoutes(routes []m.DeclaredRoute) error {
	t.send(routesMsg{routes: routes})

	return nil
}

// DisplayChecking starts the spinner.
func (t *TUI) DisplayChecking(root m.Path) {
	t.send(checkingMsg{root: root})
}

// DisplayWatching stops the spinner and marks the screen idle.
func (t *TUI) DisplayWatching(root m.Path) {
	t.send(watchingMsg{root: root})
}

// DisplayError shows err in the status line until the next report.
func (t *TUI) DisplayError(err error) {
	if err == nil {
		return
	}

	t.send(errorMsg{err: err})
}
