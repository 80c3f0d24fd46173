package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `import java.util.Scanner;

class Helper {
    static int twice(int x) { return 2 * x; }
}

public class Main {
    public static void main(String[] args) {
        System.out.println(Helper.twice(21));
    }
}
`

func TestRunSplitThenMerge(t *testing.T) {
	logger = zap.NewNop()
	t.Cleanup(viper.Reset)

	work := t.TempDir()
	merged := filepath.Join(work, "Main.java")
	require.NoError(t, os.WriteFile(merged, []byte(sample), 0o644))

	require.NoError(t, runSplit(splitCmd, []string{merged}))
	splitDir := filepath.Join(work, "Main")
	assert.FileExists(t, filepath.Join(splitDir, "Helper.java"))
	assert.FileExists(t, filepath.Join(splitDir, "Main.java"))

	out := filepath.Join(work, "merged.java")
	require.NoError(t, runMerge(mergeCmd, []string{splitDir, out}))
	assert.FileExists(t, out)
}

func TestRunSplitExplicitOutDir(t *testing.T) {
	logger = zap.NewNop()
	t.Cleanup(viper.Reset)

	work := t.TempDir()
	merged := filepath.Join(work, "Main.java")
	require.NoError(t, os.WriteFile(merged, []byte(sample), 0o644))

	outDir := filepath.Join(work, "elsewhere")
	require.NoError(t, runSplit(splitCmd, []string{merged, outDir}))
	assert.FileExists(t, filepath.Join(outDir, "Main.java"))
}

func TestRunVerifyConverges(t *testing.T) {
	logger = zap.NewNop()
	t.Cleanup(viper.Reset)

	merged := filepath.Join(t.TempDir(), "Main.java")
	require.NoError(t, os.WriteFile(merged, []byte(sample), 0o644))
	require.NoError(t, runVerify(verifyCmd, []string{merged}))
}

func TestRunMergeBadPolicy(t *testing.T) {
	logger = zap.NewNop()
	t.Cleanup(viper.Reset)
	viper.Set("entry-policy", "latest")

	err := runMerge(mergeCmd, []string{t.TempDir(), "out.java"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry policy")
}

func TestResolvedExt(t *testing.T) {
	t.Cleanup(viper.Reset)
	assert.Equal(t, "", resolvedExt())
	viper.Set("ext", "jav")
	assert.Equal(t, ".jav", resolvedExt())
	viper.Set("ext", ".kt")
	assert.Equal(t, ".kt", resolvedExt())
}
