package types

// ArtifactKind names one of the three artifact subtrees of a package
type ArtifactKind string

const (
	ArtifactBinaries ArtifactKind = "binaries"
	ArtifactLaunch   ArtifactKind = "launch"
	ArtifactConfig   ArtifactKind = "config"
)

// ArtifactSet is the triple of subtrees that belong to a package.
// Each entry is a directory path that may or may not exist.
type ArtifactSet struct {
	Package  string
	Binaries string
	Launch   string
	Config   string
}

// Path returns the subtree path for the given kind
func (a ArtifactSet) Path(kind ArtifactKind) string {
	switch kind {
	case ArtifactBinaries:
		return a.Binaries
	case ArtifactLaunch:
		return a.Launch
	case ArtifactConfig:
		return a.Config
	default:
		return ""
	}
}

// CopyStats summarises one recursive merge copy
type CopyStats struct {
	Files       int
	Directories int
	Overwritten int
	Bytes       int64
}

// Add accumulates other into s
func (s *CopyStats) Add(other CopyStats) {
	s.Files += other.Files
	s.Directories += other.Directories
	s.Overwritten += other.Overwritten
	s.Bytes += other.Bytes
}
