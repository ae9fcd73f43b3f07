package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	adaptermocks "github.com/mouse-blink/routelint/internal/adapter/mocks"
	"github.com/mouse-blink/routelint/internal/config"
	"github.com/mouse-blink/routelint/internal/controller"
	controllermocks "github.com/mouse-blink/routelint/internal/controller/mocks"
	"github.com/mouse-blink/routelint/internal/domain"
	domainmocks "github.com/mouse-blink/routelint/internal/domain/mocks"
	m "github.com/mouse-blink/routelint/internal/model"
)

// useWorkflow swaps the workflow factory for the duration of the test.
func useWorkflow(t *testing.T, workflow domain.Workflow) {
	t.Helper()

	original := newWorkflow
	newWorkflow = func(*zap.Logger) domain.Workflow { return workflow }

	t.Cleanup(func() { newWorkflow = original })
}

// useUI swaps the UI factory for the duration of the test.
func useUI(t *testing.T, ui controller.UI) {
	t.Helper()

	original := newUI
	newUI = func(*cobra.Command, bool, ...controller.Option) controller.UI { return ui }

	t.Cleanup(func() { newUI = original })
}

func newTestRootCmd(args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	return cmd, stdout, stderr
}

func brokenReport() m.BrokenLinkReport {
	return m.BrokenLinkReport{
		Root:   "src",
		Router: m.Path(filepath.Join("src", "App.tsx")),
		Broken: []m.BrokenLink{{
			Group: m.ReferenceGroup{
				NormalizedTarget: "/settings",
				Occurrences: []m.Reference{
					{RawTarget: "/settings", NormalizedTarget: "/settings", File: "a.tsx", Line: 1, Kind: m.KindLinkTarget},
					{RawTarget: "/settings", NormalizedTarget: "/settings", File: "b.tsx", Line: 2, Kind: m.KindLinkTarget},
					{RawTarget: "/settings/", NormalizedTarget: "/settings", File: "c.tsx", Line: 3, Kind: m.KindImperativeNavigate},
				},
			},
		}},
		DeclaredRoutes:     3,
		DistinctReferences: 3,
		TotalReferences:    5,
	}
}

func TestRootCmd_CheckDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	report := m.BrokenLinkReport{Root: "src", DeclaredRoutes: 2}
	defaults := config.Default()

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == "src" &&
			args.Router == m.Path(filepath.Join("src", "App.tsx")) &&
			args.Scan.Parallel == 1 &&
			assert.ObjectsAreEqual(defaults.Extensions, args.Scan.Extensions) &&
			assert.ObjectsAreEqual(defaults.ExcludeDirs, args.Scan.ExcludeDirs) &&
			assert.ObjectsAreEqual(defaults.Exemptions, args.Exemptions)
	})).Return(report, nil)
	mockUI.EXPECT().DisplayReport(report).Return(false, nil)

	cmd, _, stderr := newTestRootCmd()

	assert.Equal(t, 0, execute(cmd))
	assert.Empty(t, stderr.String())
}

func TestRootCmd_FlagsOverrideDefaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == "web" &&
			args.Router == m.Path(filepath.Join("web", "routes", "Main.tsx")) &&
			args.Scan.Parallel == 4 &&
			assert.ObjectsAreEqual([]string{".ts", ".mdx"}, args.Scan.Extensions) &&
			slices.Contains(args.Scan.ExcludeDirs, "vendor") &&
			slices.Contains(args.Exemptions, "/health") &&
			slices.Contains(args.Exemptions, "/auth")
	})).Return(m.BrokenLinkReport{}, nil)
	mockUI.EXPECT().DisplayReport(mock.Anything).Return(false, nil)

	cmd, _, _ := newTestRootCmd(
		"web",
		"--router", filepath.Join("routes", "Main.tsx"),
		"--ext", "ts,.mdx",
		"--exclude-dir", "vendor",
		"--exempt", "/health",
		"-p", "4",
	)

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_AbsoluteRouterIsKept(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	router := filepath.Join(t.TempDir(), "App.tsx")

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Router == m.Path(router)
	})).Return(m.BrokenLinkReport{}, nil)
	mockUI.EXPECT().DisplayReport(mock.Anything).Return(false, nil)

	cmd, _, _ := newTestRootCmd("--router", router)

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	path := filepath.Join(t.TempDir(), "routelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`root: frontend
router: Router.jsx
extensions: [jsx]
exemptions: ["/docs"]
parallel: 2
`), 0o600))

	mockWorkflow.EXPECT().Check(mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == "frontend" &&
			args.Router == m.Path(filepath.Join("frontend", "Router.jsx")) &&
			args.Scan.Parallel == 2 &&
			assert.ObjectsAreEqual([]string{".jsx"}, args.Scan.Extensions) &&
			assert.ObjectsAreEqual([]string{"/docs"}, args.Exemptions)
	})).Return(m.BrokenLinkReport{}, nil)
	mockUI.EXPECT().DisplayReport(mock.Anything).Return(false, nil)

	cmd, _, _ := newTestRootCmd("--config", path)

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))
	useUI(t, controllermocks.NewMockUI(t))

	cmd, _, stderr := newTestRootCmd("--config", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, 1, execute(cmd))
	assert.Contains(t, stderr.String(), "error: read config")
}

func TestRootCmd_InvalidSettings(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))
	useUI(t, controllermocks.NewMockUI(t))

	cmd, _, _ := newTestRootCmd("--parallel", "-1")

	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCmd_BrokenLinksExitStatus(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	report := brokenReport()
	mockWorkflow.EXPECT().Check(mock.Anything).Return(report, nil)
	mockUI.EXPECT().DisplayReport(report).Return(true, nil)

	cmd, _, stderr := newTestRootCmd()

	assert.Equal(t, 1, execute(cmd))
	assert.Empty(t, stderr.String(), "broken links are reported by the UI, not as an error line")
}

func TestRootCmd_SourceUnavailable(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	failure := errors.Join(domain.ErrSourceUnavailable, os.ErrNotExist)
	mockWorkflow.EXPECT().Check(mock.Anything).Return(m.BrokenLinkReport{}, failure)

	cmd, _, _ := newTestRootCmd()

	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
	mockUI.AssertNotCalled(t, "DisplayReport", mock.Anything)

	cmd, _, stderr := newTestRootCmd()
	assert.Equal(t, 1, execute(cmd))
	assert.Contains(t, stderr.String(), "error: ")
}

func TestRootCmd_ReportOut(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockStore := adaptermocks.NewMockReportStore(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	originalStore := reportStore
	reportStore = mockStore
	defer func() { reportStore = originalStore }()

	report := brokenReport()
	out := filepath.Join(t.TempDir(), "report.yaml")

	mockWorkflow.EXPECT().Check(mock.Anything).Return(report, nil)
	mockStore.EXPECT().SaveReport(m.Path(out), report).Return(nil)
	mockUI.EXPECT().DisplayReport(report).Return(true, nil)

	cmd, _, _ := newTestRootCmd("--report-out", out)

	assert.ErrorIs(t, cmd.Execute(), ErrBrokenLinks)
}

func TestRootCmd_ReportOutFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	mockStore := adaptermocks.NewMockReportStore(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	originalStore := reportStore
	reportStore = mockStore
	defer func() { reportStore = originalStore }()

	diskFull := errors.New("disk full")
	mockWorkflow.EXPECT().Check(mock.Anything).Return(m.BrokenLinkReport{}, nil)
	mockStore.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(diskFull)

	cmd, _, _ := newTestRootCmd("--report-out", "out.yaml")

	err := cmd.Execute()
	assert.ErrorIs(t, err, diskFull)
	assert.ErrorContains(t, err, "save report")
}

func TestRootCmd_PlainOutputHonorsMaxOccurrences(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Check(mock.Anything).Return(brokenReport(), nil)

	cmd, stdout, _ := newTestRootCmd("--max-occurrences", "1")

	assert.ErrorIs(t, cmd.Execute(), ErrBrokenLinks)

	out := stdout.String()
	assert.Contains(t, out, "BROKEN /settings")
	assert.Contains(t, out, "a.tsx:1 [link]")
	assert.NotContains(t, out, "b.tsx:2")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "suggestion: none")
}

func TestRoutesCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, mockUI)

	routes := []m.DeclaredRoute{
		{RawPattern: "/", NormalizedPattern: "/", Shape: m.ShapeRoute, Line: 3},
		{RawPattern: "/user/:id", NormalizedPattern: "/user/:param", Shape: m.ShapeRoute, Line: 4},
	}

	mockWorkflow.EXPECT().Routes(domain.RoutesArgs{Router: m.Path(filepath.Join("app", "App.tsx"))}).Return(routes, nil)
	mockUI.EXPECT().DisplayRoutes(routes).Return(nil)

	cmd, _, _ := newTestRootCmd("routes", "app")

	require.NoError(t, cmd.Execute())
}

func TestRoutesCmd_SourceUnavailable(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)
	useUI(t, controllermocks.NewMockUI(t))

	mockWorkflow.EXPECT().Routes(mock.Anything).Return(nil, domain.ErrSourceUnavailable)

	cmd, _, _ := newTestRootCmd("routes")

	assert.ErrorIs(t, cmd.Execute(), domain.ErrSourceUnavailable)
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "default is warn", verbose: false, wantDebug: false},
		{name: "verbose is debug", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := newLogger(buf, tt.verbose)

			log.Debug("debug line")
			log.Warn("warn line", zap.String("file", "a.tsx"))

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Contains(t, buf.String(), "warn line")
			assert.Contains(t, buf.String(), "a.tsx")
		})
	}
}

func TestRouterPath(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "repo", "App.tsx")

	tests := []struct {
		name string
		cfg  config.Config
		want m.Path
	}{
		{name: "relative joins root", cfg: config.Config{Root: "src", Router: "App.tsx"}, want: m.Path(filepath.Join("src", "App.tsx"))},
		{name: "nested relative", cfg: config.Config{Root: "src", Router: "router/index.tsx"}, want: m.Path(filepath.Join("src", "router", "index.tsx"))},
		{name: "absolute kept", cfg: config.Config{Root: "src", Router: abs}, want: m.Path(abs)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routerPath(tt.cfg))
		})
	}
}
