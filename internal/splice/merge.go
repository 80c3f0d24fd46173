package splice

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"class-splicer/internal/javasrc"
	"class-splicer/internal/srcwalk"
	"class-splicer/internal/textutil"
)

// EntryPolicy decides which file supplies the merged unit's entry point when
// more than one qualifies.
type EntryPolicy string

const (
	// EntryPolicyLast keeps the candidate from the last file in enumeration
	// order. This mirrors the historical behavior of the converter.
	EntryPolicyLast EntryPolicy = "last"
	// EntryPolicyFirst keeps the first candidate and ignores the rest.
	EntryPolicyFirst EntryPolicy = "first"
	// EntryPolicyStrict fails with ErrMultipleEntryPoints on ambiguity.
	EntryPolicyStrict EntryPolicy = "strict"
)

// ParseEntryPolicy validates a policy name from flags or config.
func ParseEntryPolicy(s string) (EntryPolicy, error) {
	switch EntryPolicy(s) {
	case EntryPolicyLast, EntryPolicyFirst, EntryPolicyStrict:
		return EntryPolicy(s), nil
	case "":
		return EntryPolicyLast, nil
	}
	return "", fmt.Errorf("unknown entry policy %q (want last, first or strict)", s)
}

// MergeOptions controls Merge.
type MergeOptions struct {
	// Ext selects which files under the input directory participate.
	// Defaults to DefaultExt.
	Ext string
	// Policy resolves multiple entry-point candidates. Defaults to
	// EntryPolicyLast.
	Policy EntryPolicy
	// Excludes are base-name prefixes skipped during enumeration. Nil means
	// srcwalk.DefaultExcludes.
	Excludes []string
}

// MergeResult reports what Merge assembled.
type MergeResult struct {
	// EntryFile is the RelPath of the file that supplied the entry point.
	EntryFile string
	// Files is the number of source files merged.
	Files int
	// Imports is the merged, sorted import block size.
	Imports int
}

// fileUnit pairs an enumerated file with its parsed structural view.
type fileUnit struct {
	info srcwalk.FileInfo
	unit javasrc.Unit
	body string // all top-level type lines, package/import lines dropped
}

// Merge reassembles every source file under inDir into one compilation unit
// at outPath: a sorted, deduplicated import block (imports of types that are
// themselves defined among the merged files are pruned), then the auxiliary
// types with their public modifier stripped, then the entry-point file's
// content verbatim. outPath is overwritten unconditionally.
func Merge(inDir, outPath string, opts MergeOptions) (MergeResult, error) {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}
	policy := opts.Policy
	if policy == "" {
		policy = EntryPolicyLast
	}
	excludes := opts.Excludes
	if excludes == nil {
		excludes = srcwalk.DefaultExcludes
	}

	if !srcwalk.DirExists(inDir) {
		return MergeResult{}, fmt.Errorf("%w: %s", ErrInputNotFound, inDir)
	}
	files, err := srcwalk.Collect(inDir, ext, excludes)
	if err != nil {
		return MergeResult{}, fmt.Errorf("scanning %s: %w", inDir, err)
	}
	if len(files) == 0 {
		return MergeResult{}, fmt.Errorf("%w: no %s files under %s", ErrNoSourceFiles, ext, inDir)
	}

	units, err := parseAll(files)
	if err != nil {
		return MergeResult{}, err
	}

	// Pass 1: every top-level type name across all files. Imports of these
	// names become self-referential after merging and are pruned in pass 2.
	parsed := make([]javasrc.Unit, len(units))
	for i, fu := range units {
		parsed[i] = fu.unit
	}
	defined := javasrc.CollectTypeNames(parsed)

	// Pass 2: collect imports and partition files into the entry-point
	// candidate and auxiliaries.
	importSet := make(map[string]struct{})
	var aux []string
	entryIdx := -1
	for i, fu := range units {
		for _, imp := range fu.unit.Imports {
			name := javasrc.ImportedName(imp)
			if _, local := defined[name]; local && name != "" {
				continue
			}
			importSet[imp] = struct{}{}
		}
		if len(fu.unit.EntryPoints()) > 0 {
			if entryIdx >= 0 && policy == EntryPolicyStrict {
				return MergeResult{}, fmt.Errorf("%w: %s and %s", ErrMultipleEntryPoints,
					units[entryIdx].info.RelPath, fu.info.RelPath)
			}
			if entryIdx < 0 || policy != EntryPolicyFirst {
				entryIdx = i
			}
			continue
		}
		aux = append(aux, demote(fu.unit))
	}
	if entryIdx < 0 {
		return MergeResult{}, fmt.Errorf("%w: no public static main under %s", ErrNoEntryPoint, inDir)
	}

	imports := make([]string, 0, len(importSet))
	for imp := range importSet {
		imports = append(imports, imp)
	}
	sort.Strings(imports)

	sections := make([]string, 0, len(aux)+2)
	sections = append(sections, strings.Join(imports, "\n"))
	sections = append(sections, aux...)
	sections = append(sections, units[entryIdx].body)
	content := textutil.EnsureTrailingLF(textutil.JoinSections(sections...))

	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return MergeResult{}, fmt.Errorf("%w: writing %s: %v", ErrWriteFailure, outPath, err)
	}
	return MergeResult{
		EntryFile: units[entryIdx].info.RelPath,
		Files:     len(units),
		Imports:   len(imports),
	}, nil
}

func parseAll(files []srcwalk.FileInfo) ([]fileUnit, error) {
	units := make([]fileUnit, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.AbsPath, err)
		}
		u := javasrc.Parse(textutil.NormalizeLF(string(data)))
		units = append(units, fileUnit{info: f, unit: u, body: unitBody(u, false)})
	}
	return units, nil
}

// unitBody renders a unit's top-level types back to text, one blank line
// between types. With stripPublic, each header loses its public modifier.
func unitBody(u javasrc.Unit, stripPublic bool) string {
	chunks := make([]string, 0, len(u.Types))
	for _, t := range u.Types {
		lines := t.Lines
		if stripPublic {
			lines = append([]string{javasrc.StripPublic(lines[0])}, lines[1:]...)
		}
		chunks = append(chunks, strings.Join(lines, "\n"))
	}
	return textutil.JoinSections(chunks...)
}

// demote renders an auxiliary file's types with public visibility stripped;
// the merged unit keeps its single public slot for the entry-point type.
func demote(u javasrc.Unit) string {
	return unitBody(u, true)
}
