package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/dataset"
)

type benchVariant struct {
	name   string
	mode   setcover.Mode
	bitmap setcover.Bitmap
}

var benchVariants = []benchVariant{
	{name: "naive", mode: setcover.ModeNaive, bitmap: setcover.DenseBitmap},
	{name: "bitset", mode: setcover.ModeBitset, bitmap: setcover.DenseBitmap},
	{name: "roaring", mode: setcover.ModeBitset, bitmap: setcover.RoaringBitmap},
}

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench <dataset>...",
		Short: "Time every selector on one or more datasets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := newRuntime(ctx, cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			datasets, err := dataset.LoadAll(ctx, rt.store, args, rt.cfg.Concurrency)
			if err != nil {
				return err
			}
			rt.log.DebugContext(ctx, "datasets loaded", "count", len(datasets), "elapsed", time.Since(start))

			metrics := &setcover.BasicMetricsCollector{}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATASET\tSETS\tUNIVERSE\tSELECTOR\tCOVER\tELAPSED\tTHROUGHPUT")

			for _, d := range datasets {
				sets := orderedSets(d.Sets, rt.cfg.Sorted)
				memberships := float64(d.Memberships())

				for _, v := range benchVariants {
					res, err := setcover.Solve(sets, v.mode,
						setcover.WithLogger(rt.logger),
						setcover.WithBitmap(v.bitmap),
						setcover.WithMetricsCollector(metrics),
					)
					if err != nil {
						return fmt.Errorf("%s/%s: %w", d.Name, v.name, err)
					}
					if err := setcover.Verify(d.Sets, res.Cover); err != nil {
						return fmt.Errorf("%s/%s: cover does not verify: %w", d.Name, v.name, err)
					}

					throughput := "-"
					if secs := res.Elapsed.Seconds(); secs > 0 {
						throughput = humanize.SIWithDigits(memberships/secs, 2, "m/s")
					}

					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
						d.Name,
						humanize.Comma(int64(d.Len())),
						humanize.Comma(int64(res.UniverseSize)),
						v.name,
						len(res.Cover),
						res.Elapsed.Round(time.Microsecond),
						throughput,
					)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			stats := metrics.GetStats()
			rt.log.InfoContext(ctx, "bench finished",
				"covers", stats.CoverCount,
				"avg", time.Duration(stats.CoverAvgNanos),
				"sets_chosen", humanize.Comma(stats.SetsChosen),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("concurrency", 4, "datasets loaded in parallel")
	flags.Bool("sorted", true, "order sets by ID so ties resolve deterministically")

	return cmd
}
