package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"class-splicer/internal/splice"
	"class-splicer/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <split-dir> <out-file>",
	Short: "Re-merge automatically whenever split files change",
	Long: `Watch observes the split directory and re-runs merge into the output
file after each debounced burst of changes. Merges run one at a time; a merge
failure (for example while a file is mid-edit and has no entry point) is
logged and the next change triggers another attempt. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before re-merging")
	watchCmd.Flags().String("entry-policy", "", "entry-point ambiguity policy: last, first or strict (default last)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := mergeOptions(cmd)
	if err != nil {
		return err
	}
	dir, outPath := args[0], args[1]

	remerge := func() {
		res, err := splice.Merge(dir, outPath, opts)
		if err != nil {
			logger.Warn("merge failed", zap.String("dir", dir), zap.Error(err))
			return
		}
		logger.Info("merged", zap.String("output", outPath),
			zap.String("entry", res.EntryFile), zap.Int("files", res.Files))
	}
	// Produce an initial merge so the output exists before the first change.
	remerge()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = watch.Run(ctx, dir, remerge, watch.Options{
		Ext:      firstNonEmpty(opts.Ext, splice.DefaultExt),
		Debounce: watchDebounce,
		Logger:   logger,
	})
	if errors.Is(err, context.Canceled) {
		fmt.Println("stopped")
		return nil
	}
	return err
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
