package types

// Classification is the outcome of comparing one config file name
type Classification string

const (
	// Identical files have byte-for-byte equal content on both sides
	Identical Classification = "identical"
	// Conflicting files share a name but differ in content
	Conflicting Classification = "conflicting"
	// SourceOnly files exist only in the source directory
	SourceOnly Classification = "source-only"
)

// ReconciliationEntry is one file name present in a source config
// directory, classified against the destination directory
type ReconciliationEntry struct {
	Name           string
	Classification Classification
	SourcePath     string
	DestPath       string
}

// ReconcileAction is what the reconciler does with an entry
type ReconcileAction string

const (
	ActionNone      ReconcileAction = "none"
	ActionCopy      ReconcileAction = "copy"
	ActionOverwrite ReconcileAction = "overwrite"
	ActionSkip      ReconcileAction = "skip"
)
