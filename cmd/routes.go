package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/routelint/internal/domain"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "routes [root]",
		Short: "List the routes declared in the router file",
		Long: `List every route pattern and redirect destination declared in the router
file, in declaration order, together with its normalized form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings(cmd, args)
			if err != nil {
				return err
			}

			routes, err := newWorkflow(opts.log).Routes(domain.RoutesArgs{Router: routerPath(cfg)})
			if err != nil {
				return err
			}

			return opts.ui(cmd, cfg).DisplayRoutes(routes)
		},
	}
}
