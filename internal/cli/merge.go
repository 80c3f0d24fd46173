package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"class-splicer/internal/splice"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <split-dir> <out-file>",
	Short: "Reassemble per-type files into one merged submission file",
	Long: `Merge scans the directory recursively for source files and writes a
single compilation unit: sorted unique imports (imports of types defined
among the merged files are pruned), the auxiliary types with their public
modifier stripped, and the entry-point file's content last. The output file
is overwritten unconditionally.

Exactly one file must contain a public type with a public static main
signature; with --entry-policy strict, more than one is an error, otherwise
the policy picks which candidate wins.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().String("entry-policy", "", "entry-point ambiguity policy: last, first or strict (default last)")
	mergeCmd.Flags().StringSlice("exclude", nil, "base-name prefixes to skip while scanning")
}

func runMerge(cmd *cobra.Command, args []string) error {
	opts, err := mergeOptions(cmd)
	if err != nil {
		return err
	}
	res, err := splice.Merge(args[0], args[1], opts)
	if err != nil {
		return err
	}
	logger.Info("merge done",
		zap.String("dir", args[0]),
		zap.String("output", args[1]),
		zap.String("entry", res.EntryFile),
		zap.Int("files", res.Files),
		zap.Int("imports", res.Imports))
	fmt.Printf("Merged %d file(s) into %s (entry point %s)\n", res.Files, args[1], res.EntryFile)
	return nil
}

// mergeOptions resolves shared merge settings. A flag set on the invoked
// command wins; otherwise the config file / environment supplies the value.
// Several commands carry an entry-policy flag, so the usual BindPFlag
// approach would leave all but one of them dangling.
func mergeOptions(cmd *cobra.Command) (splice.MergeOptions, error) {
	policy, err := splice.ParseEntryPolicy(stringSetting(cmd, "entry-policy"))
	if err != nil {
		return splice.MergeOptions{}, err
	}
	var excludes []string
	if cmd.Flags().Changed("exclude") {
		excludes, _ = cmd.Flags().GetStringSlice("exclude")
	} else if v := viper.GetStringSlice("exclude"); len(v) > 0 {
		excludes = v
	}
	return splice.MergeOptions{
		Ext:      resolvedExt(),
		Policy:   policy,
		Excludes: excludes,
	}, nil
}

// stringSetting reads a string flag from cmd when explicitly set, falling
// back to viper (config file, env) otherwise.
func stringSetting(cmd *cobra.Command, key string) string {
	if cmd.Flags().Changed(key) {
		v, _ := cmd.Flags().GetString(key)
		return v
	}
	return viper.GetString(key)
}
