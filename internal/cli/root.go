// Package cli implements the setcover command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/setcover"
	"github.com/hupe1980/setcover/blobstore"
	"github.com/hupe1980/setcover/internal/config"
	"github.com/hupe1980/setcover/internal/logging"
	"github.com/hupe1980/setcover/internal/storage"
)

// NewRootCommand returns the setcover root command with all subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "setcover",
		Short: "Greedy set cover over datasets",
		Long: `setcover computes approximate minimum set covers with the greedy heuristic.

Datasets are CSV ("set,element" rows), TSV or JSON files, optionally compressed
with zstd (.zst), lz4 (.lz4) or gzip (.gz), read from a local directory, S3 or MinIO.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./setcover.yaml if present)")
	flags.String("store", "file://.", "dataset store: dir, file://dir, s3://bucket/prefix or minio://endpoint/bucket/prefix")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newSolveCommand(),
		newBenchCommand(),
		newGenerateCommand(),
	)

	return rootCmd
}

// runtime is the per-invocation state shared by all subcommands.
type runtime struct {
	cfg    *config.Config
	log    *slog.Logger
	logger *setcover.Logger
	store  blobstore.Store
}

func newRuntime(ctx context.Context, cmd *cobra.Command) (*runtime, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config")

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return nil, err
	}

	handler, err := logging.NewHandler(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Store, storage.Credentials{
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
	})
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:    cfg,
		log:    slog.New(handler),
		logger: setcover.NewLogger(handler),
		store:  store,
	}, nil
}

func solveOptions(rt *runtime, extra ...setcover.Option) ([]setcover.Option, error) {
	bitmap, err := setcover.ParseBitmap(rt.cfg.Bitmap)
	if err != nil {
		return nil, err
	}
	opts := []setcover.Option{
		setcover.WithLogger(rt.logger),
		setcover.WithBitmap(bitmap),
	}
	return append(opts, extra...), nil
}

func orderedSets(sets map[string][]string, sorted bool) []setcover.Set[string, string] {
	if sorted {
		return setcover.SortedSets(sets)
	}
	out := make([]setcover.Set[string, string], 0, len(sets))
	for id, elems := range sets {
		out = append(out, setcover.Set[string, string]{ID: id, Elements: elems})
	}
	return out
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}
