package types

import "time"

// FileDetail describes one side of a file comparison.
type FileDetail struct {
	Path        string
	Size        int64
	ModTime     time.Time
	ContentHash string
}

// FileComparison is the result of comparing a source file against a
// target location. Computed fresh for every comparison, never cached:
// the content hash is the sole oracle for "has this config drifted".
type FileComparison struct {
	AreIdentical bool
	IsNewFile    bool
	Source       FileDetail
	Target       FileDetail
}
