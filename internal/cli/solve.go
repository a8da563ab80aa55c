package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/dataset"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <dataset>",
		Short: "Compute a cover and print the chosen set IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := newRuntime(ctx, cmd)
			if err != nil {
				return err
			}

			mode, err := setcover.ParseMode(rt.cfg.Mode)
			if err != nil {
				return err
			}
			opts, err := solveOptions(rt)
			if err != nil {
				return err
			}

			d, err := dataset.Load(ctx, rt.store, args[0])
			if err != nil {
				return err
			}

			res, err := setcover.Solve(orderedSets(d.Sets, rt.cfg.Sorted), mode, opts...)
			if err != nil {
				return err
			}
			if err := setcover.Verify(d.Sets, res.Cover); err != nil {
				return fmt.Errorf("cover does not verify: %w", err)
			}

			rt.log.InfoContext(ctx, "cover computed",
				"dataset", d.Name,
				"mode", mode.String(),
				"sets", humanize.Comma(int64(d.Len())),
				"universe", humanize.Comma(int64(res.UniverseSize)),
				"cover", len(res.Cover),
				"elapsed", res.Elapsed,
			)

			return printLines(cmd.OutOrStdout(), res.Cover)
		},
	}

	flags := cmd.Flags()
	flags.String("mode", "bitset", "selector: naive or bitset")
	flags.String("bitmap", "dense", "bit vector backend for bitset mode: dense or roaring")
	flags.Bool("sorted", true, "order sets by ID so ties resolve deterministically")

	return cmd
}
