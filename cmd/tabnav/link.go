package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/tabnav/internal/catalog"
	"github.com/jask/tabnav/internal/deeplink"
)

func newLinkCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "link <graph> <destination> [key=value...]",
		Short: "Print a deep link URI",
		Example: `  tabnav link library book title=Dune date=1965
  tabnav "$(tabnav link settings licenses)"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := deeplink.NewBuilder().SetGraph(args[0]).SetDestination(args[1])
			for _, kv := range args[2:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || k == "" {
					return fmt.Errorf("argument %q: want key=value", kv)
				}
				b.PutArgument(k, v)
			}
			req, err := b.Build()
			if err != nil {
				return err
			}
			if cfg, err := loadConfig(flags.config); err == nil {
				ids := catalog.IDs(cfg.TabDefs())
				if !slices.Contains(ids, req.Graph) {
					if hint, ok := catalog.Suggest(req.Graph, ids); ok {
						fmt.Fprintf(cmd.ErrOrStderr(), "warn: no tab %q (did you mean %q?)\n", req.Graph, hint)
					} else {
						fmt.Fprintf(cmd.ErrOrStderr(), "warn: no tab %q\n", req.Graph)
					}
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), req.URI())
			return nil
		},
	}
}
