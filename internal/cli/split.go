package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"class-splicer/internal/splice"
)

var splitCmd = &cobra.Command{
	Use:   "split <merged-file> [out-dir]",
	Short: "Partition a merged file into one file per top-level type",
	Long: `Split reads one merged source file and writes <TypeName><ext> files
into the output directory, each containing the shared import block and that
type's body with its visibility forced to public.

When out-dir is omitted it defaults to a directory named after the merged
file (without extension) beside it. A file with no detectable types produces
an empty directory, not an error.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	mergedPath := args[0]
	outDir := splice.SplitDirFor(mergedPath)
	if len(args) == 2 {
		outDir = args[1]
	}
	res, err := splice.Split(mergedPath, outDir, splice.SplitOptions{Ext: resolvedExt()})
	if err != nil {
		return err
	}
	logger.Info("split done",
		zap.String("input", mergedPath),
		zap.String("dir", outDir),
		zap.Int("files", len(res.Files)))
	fmt.Printf("Wrote %d file(s) to %s\n", len(res.Files), outDir)
	return nil
}
