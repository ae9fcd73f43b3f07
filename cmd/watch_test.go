package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mouse-blink/routelint/internal/adapter"
	"github.com/mouse-blink/routelint/internal/controller"
	adaptermocks "github.com/mouse-blink/routelint/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/routelint/internal/controller/mocks"
	"github.com/mouse-blink/routelint/internal/domain"
	domainmocks "github.com/mouse-blink/routelint/internal/domain/mocks"
	m "github.com/mouse-blink/routelint/internal/model"
)

func useWatcher(t *testing.T, watcher adapter.Watcher) *[]string {
	t.Helper()

	var skipDirs []string

	original := newWatcher
	newWatcher = func(dirs []string, _ *zap.Logger) adapter.Watcher {
		skipDirs = dirs
		return watcher
	}

	t.Cleanup(func() { newWatcher = original })

	return &skipDirs
}

// fakeSession records the session lifecycle around a mocked UI.
type fakeSession struct {
	*controllermocks.MockUI

	onExit  func()
	started int
	closed  int
}

func (f *fakeSession) Start(onExit func()) error {
	f.started++
	f.onExit = onExit

	return nil
}

func (f *fakeSession) Close() error {
	f.closed++
	return nil
}

// useTUI forces the interactive path and returns session from the TUI factory.
func useTUI(t *testing.T, session controller.Session) *[]controller.Option {
	t.Helper()

	var options []controller.Option

	originalTUI, originalInteractive := newTUI, isInteractive
	newTUI = func(_ *cobra.Command, opts ...controller.Option) controller.Session {
		options = opts
		return session
	}
	isInteractive = func(*cobra.Command) bool { return true }

	t.Cleanup(func() {
		newTUI = originalTUI
		isInteractive = originalInteractive
	})

	return &options
}

func TestWatchCmd_RerunsOnChange(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockWatcher := adaptermocks.NewMockWatcher(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)
	skipDirs := useWatcher(t, mockWatcher)

	report := brokenReport()

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == "web"
	})).Return(report, nil).Times(2)
	mockUI.EXPECT().DisplayChecking(m.Path("web")).Return().Times(2)
	mockUI.EXPECT().DisplayReport(report).Return(true, nil).Times(2)
	mockUI.EXPECT().DisplayWatching(m.Path("web")).Return().Times(2)
	mockWatcher.EXPECT().Watch(mock.Anything, m.Path("web"), mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Path, onChange func()) error {
			onChange()
			return nil
		})

	cmd, _, _ := newTestRootCmd("watch", "web", "--exclude-dir", "vendor")

	require.NoError(t, cmd.Execute(), "broken links do not stop watching")
	assert.Contains(t, *skipDirs, "node_modules")
	assert.Contains(t, *skipDirs, "vendor")
}

func TestWatchCmd_ErrorsAreDisplayed(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockWatcher := adaptermocks.NewMockWatcher(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)
	useWatcher(t, mockWatcher)

	mockWorkflow.EXPECT().Check(mock.Anything).Return(m.BrokenLinkReport{}, domain.ErrSourceUnavailable).Once()
	mockUI.EXPECT().DisplayChecking(m.Path("src")).Return().Once()
	mockUI.EXPECT().DisplayError(mock.MatchedBy(func(err error) bool {
		return errors.Is(err, domain.ErrSourceUnavailable)
	})).Return().Once()
	mockUI.EXPECT().DisplayWatching(m.Path("src")).Return().Once()
	mockWatcher.EXPECT().Watch(mock.Anything, m.Path("src"), mock.Anything).Return(nil)

	cmd, _, _ := newTestRootCmd("watch")

	require.NoError(t, cmd.Execute())
}

func TestWatchCmd_WatcherFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockWatcher := adaptermocks.NewMockWatcher(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)
	useWatcher(t, mockWatcher)

	failure := errors.New("too many open files")

	mockWorkflow.EXPECT().Check(mock.Anything).Return(m.BrokenLinkReport{}, nil)
	mockUI.EXPECT().DisplayChecking(mock.Anything).Return()
	mockUI.EXPECT().DisplayReport(mock.Anything).Return(false, nil)
	mockUI.EXPECT().DisplayWatching(mock.Anything).Return()
	mockWatcher.EXPECT().Watch(mock.Anything, mock.Anything, mock.Anything).Return(failure)

	cmd, _, _ := newTestRootCmd("watch")

	assert.ErrorIs(t, cmd.Execute(), failure)
}

func TestWatchCmd_InteractiveSession(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWatcher := adaptermocks.NewMockWatcher(t)
	session := &fakeSession{MockUI: controllermocks.NewMockUI(t)}
	useWorkflow(t, mockWorkflow)
	options := useTUI(t, session)
	useWatcher(t, mockWatcher)

	report := brokenReport()

	mockWorkflow.EXPECT().Check(mock.Anything).Return(report, nil).Once()
	session.EXPECT().DisplayChecking(m.Path("src")).Return().Once()
	session.EXPECT().DisplayReport(report).Return(true, nil).Once()
	session.EXPECT().DisplayWatching(m.Path("src")).Return().Once()
	mockWatcher.EXPECT().Watch(mock.Anything, m.Path("src"), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.Path, _ func()) error {
			// The user quits the session.
			session.onExit()
			<-ctx.Done()

			return nil
		})

	cmd, stdout, _ := newTestRootCmd("watch", "--max-occurrences", "2")

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, session.started)
	assert.Equal(t, 1, session.closed)
	assert.Len(t, *options, 1)
	assert.Empty(t, stdout.String(), "the session owns the screen")
}

func TestWatchCmd_NoTUIFallsBackToPlainOutput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockWatcher := adaptermocks.NewMockWatcher(t)
	session := &fakeSession{MockUI: controllermocks.NewMockUI(t)}
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)
	useTUI(t, session)
	useWatcher(t, mockWatcher)

	mockWorkflow.EXPECT().Check(mock.Anything).Return(m.BrokenLinkReport{}, nil).Once()
	mockUI.EXPECT().DisplayChecking(m.Path("src")).Return().Once()
	mockUI.EXPECT().DisplayReport(mock.Anything).Return(false, nil).Once()
	mockUI.EXPECT().DisplayWatching(m.Path("src")).Return().Once()
	mockWatcher.EXPECT().Watch(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	cmd, _, _ := newTestRootCmd("watch", "--no-tui")

	require.NoError(t, cmd.Execute())
	assert.Zero(t, session.started)
	assert.Zero(t, session.closed)
}
