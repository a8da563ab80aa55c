package cli

import (
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/setcover/dataset"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <name>",
		Short: "Write a random dataset",
		Long: `Write a random dataset. Each set draws --draws elements uniformly from
[0, --universe); repeated draws collapse. The file format follows the name,
e.g. random.csv.zst.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := newRuntime(ctx, cmd)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(rt.cfg.Seed))
			d, err := dataset.Random(rng, dataset.Params{
				Sets:     rt.cfg.Sets,
				Universe: rt.cfg.Universe,
				Draws:    rt.cfg.Draws,
			})
			if err != nil {
				return err
			}

			if err := dataset.Save(ctx, rt.store, args[0], d); err != nil {
				return err
			}

			rt.log.InfoContext(ctx, "dataset written",
				"name", args[0],
				"sets", humanize.Comma(int64(d.Len())),
				"universe", humanize.Comma(int64(d.Universe())),
				"memberships", humanize.Comma(int64(d.Memberships())),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("sets", 100, "number of sets")
	flags.Int("universe", 1000, "element domain size")
	flags.Int("draws", 20, "uniform draws per set")
	flags.Int64("seed", 1, "random seed")

	return cmd
}
