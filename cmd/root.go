// Package cmd provides the root command and CLI setup for routelint.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/routelint/internal/adapter"
	"github.com/mouse-blink/routelint/internal/config"
	"github.com/mouse-blink/routelint/internal/controller"
	"github.com/mouse-blink/routelint/internal/domain"
	m "github.com/mouse-blink/routelint/internal/model"
)

// ErrBrokenLinks is returned by a check that found unreachable references.
// It selects a failing exit status without printing an error line.
var ErrBrokenLinks = errors.New("broken route references found")

var newWorkflow = func(log *zap.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		domain.NewRouteTableBuilder(fsAdapter, log),
		domain.NewReferenceScanner(fsAdapter, log),
		log,
	)
}

var newUI = controller.NewUI
var newTUI = func(cmd *cobra.Command, options ...controller.Option) controller.Session {
	return controller.NewTUI(cmd, options...)
}
var isInteractive = func(cmd *cobra.Command) bool {
	return controller.IsTTY(cmd.OutOrStdout())
}
var reportStore adapter.ReportStore = adapter.NewReportStore()
var newWatcher = func(skipDirs []string, log *zap.Logger) adapter.Watcher {
	return adapter.NewFSWatcher(skipDirs, adapter.DefaultDebounce, log)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

type rootOptions struct {
	configPath     string
	router         string
	exempt         []string
	excludeDirs    []string
	extensions     []string
	maxOccurrences int
	parallel       int
	reportOut      string
	noColor        bool
	verbose        bool

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "routelint [root]",
		Short: "Find navigation references that match no declared route",
		Long: `Routelint cross-checks the routes declared in a React Router style
declaration file against every navigation reference in a source tree.

References are collected from:
  - to="/path"           link targets
  - navigate("/path")    imperative navigation
  - href="/path"         anchors

Dynamic segments (:id, numbers, UUIDs, ${...}) are normalized before
comparison. Every unreachable target is reported with its occurrences and
the closest declared route. The exit status is 1 when anything is broken.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.log = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd, args)
			if err != nil {
				return err
			}

			broken, err := runCheck(newWorkflow(opts.log), opts.ui(cmd, cfg), cfg, opts.reportOut)
			if err != nil {
				return err
			}

			if broken {
				return ErrBrokenLinks
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default "+config.DefaultFile+" when present)")
	flags.StringVar(&opts.router, "router", "", "route declaration file, relative paths resolve against root (default App.tsx)")
	flags.StringArrayVar(&opts.exempt, "exempt", nil, "raw target always treated as reachable (can be repeated)")
	flags.StringArrayVarP(&opts.excludeDirs, "exclude-dir", "x", nil, "directory name skipped at any depth (can be repeated)")
	flags.StringSliceVar(&opts.extensions, "ext", nil, "scanned file extensions, replaces the defaults (e.g. tsx,ts)")
	flags.IntVar(&opts.maxOccurrences, "max-occurrences", controller.DefaultMaxOccurrences, "occurrences printed per broken target")
	flags.IntVarP(&opts.parallel, "parallel", "p", 1, "number of files scanned concurrently")
	flags.StringVar(&opts.reportOut, "report-out", "", "also write the report as YAML to this file")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable styled output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	cmd.AddCommand(newRoutesCmd(opts), newWatchCmd(opts))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if !errors.Is(err, ErrBrokenLinks) {
		cmd.PrintErrln("error:", err)
	}

	return 1
}

// settings layers the config file, the positional root and changed flags.
func (o *rootOptions) settings(cmd *cobra.Command, args []string) (config.Config, error) {
	path, optional := o.configPath, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return config.Config{}, err
	}

	if len(args) > 0 {
		cfg.Root = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("router") {
		cfg.Router = o.router
	}

	if flags.Changed("ext") {
		cfg = cfg.WithExtensions(o.extensions)
	}

	if flags.Changed("max-occurrences") {
		cfg.MaxOccurrences = o.maxOccurrences
	}

	if flags.Changed("parallel") {
		cfg.Parallel = o.parallel
	}

	cfg = cfg.WithExemptions(o.exempt).WithExcludeDirs(o.excludeDirs)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	o.log.Debug("settings resolved",
		zap.String("root", cfg.Root),
		zap.String("router", string(routerPath(cfg))),
		zap.Strings("extensions", cfg.Extensions),
		zap.Int("parallel", cfg.Parallel))

	return cfg, nil
}

func (o *rootOptions) ui(cmd *cobra.Command, cfg config.Config) controller.UI {
	useColor := !o.noColor && controller.IsTTY(cmd.OutOrStdout())

	return newUI(cmd, useColor, controller.WithMaxOccurrences(cfg.MaxOccurrences))
}

// runCheck runs one check, stores the report when reportOut is set and
// renders it. It reports whether any reference group is broken.
func runCheck(workflow domain.Workflow, ui controller.UI, cfg config.Config, reportOut string) (bool, error) {
	report, err := workflow.Check(checkArgs(cfg))
	if err != nil {
		return false, err
	}

	if reportOut != "" {
		if err := reportStore.SaveReport(m.Path(reportOut), report); err != nil {
			return false, fmt.Errorf("save report: %w", err)
		}
	}

	return ui.DisplayReport(report)
}

func checkArgs(cfg config.Config) domain.CheckArgs {
	return domain.CheckArgs{
		Root:   m.Path(cfg.Root),
		Router: routerPath(cfg),
		Scan: domain.ScanOptions{
			ExcludeDirs: cfg.ExcludeDirs,
			Extensions:  cfg.Extensions,
			Parallel:    cfg.Parallel,
		},
		Exemptions: cfg.Exemptions,
	}
}

// routerPath resolves a relative router file against the scan root.
func routerPath(cfg config.Config) m.Path {
	if filepath.IsAbs(cfg.Router) {
		return m.Path(cfg.Router)
	}

	return m.Path(filepath.Join(cfg.Root, cfg.Router))
}

// newLogger builds a console logger writing to w, at warn level unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), level)

	return zap.New(core)
}
