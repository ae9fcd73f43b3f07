package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/routelint/internal/controller"
	m "github.com/mouse-blink/routelint/internal/model"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var noTUI bool

	cmd := &cobra.Command{
		Use:   "watch [root]",
		Short: "Re-run the check whenever sources change",
		Long: `Run the check once, then again after every burst of file changes below
root until interrupted. Errors are printed and watching continues.

On a terminal the results are shown in an interactive list; press enter on
a broken target to see its occurrences and q to quit. Pipes, CI and
--no-tui get plain text output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.settings(cmd, args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			workflow := newWorkflow(opts.log)
			root := m.Path(cfg.Root)

			var ui controller.UI

			if !noTUI && isInteractive(cmd) {
				session := newTUI(cmd, controller.WithMaxOccurrences(cfg.MaxOccurrences))

				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				defer cancel()

				// Quitting the session ends the watch.
				if err := session.Start(cancel); err != nil {
					return fmt.Errorf("start tui: %w", err)
				}

				defer func() { err = errors.Join(err, session.Close()) }()

				ui = session
			} else {
				ui = opts.ui(cmd, cfg)
			}

			rerun := func() {
				ui.DisplayChecking(root)

				if _, err := runCheck(workflow, ui, cfg, opts.reportOut); err != nil {
					ui.DisplayError(err)
				}

				ui.DisplayWatching(root)
			}

			rerun()

			return newWatcher(cfg.ExcludeDirs, opts.log).Watch(ctx, root, rerun)
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "print plain text even on a terminal")

	return cmd
}
