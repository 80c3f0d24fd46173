package splice

import "errors"

// Failure kinds shared by Split and Merge. Callers match with errors.Is;
// every returned error wraps one of these plus the offending path.
var (
	// ErrInputNotFound is returned when the merged file (split) or the input
	// directory (merge) does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrNoSourceFiles is returned when merge finds no file with the source
	// extension under the input directory.
	ErrNoSourceFiles = errors.New("no source files")

	// ErrNoEntryPoint is returned when none of the merged files contains a
	// public type with a public static main signature.
	ErrNoEntryPoint = errors.New("no entry point")

	// ErrMultipleEntryPoints is returned under EntryPolicyStrict when two or
	// more files qualify as the entry point.
	ErrMultipleEntryPoints = errors.New("multiple entry points")

	// ErrWriteFailure wraps I/O errors while creating directories or files.
	ErrWriteFailure = errors.New("write failure")
)
