package types

// ConfigOutcome is the result of routing a config tree through reconciliation
type ConfigOutcome struct {
	Identical   []string
	Copied      []string
	Overwritten []string
	Skipped     []string
	Unmergeable []string
}

// Applied returns every file written to the destination
func (c ConfigOutcome) Applied() []string {
	applied := make([]string, 0, len(c.Copied)+len(c.Overwritten))
	applied = append(applied, c.Copied...)
	return append(applied, c.Overwritten...)
}

// DeployResult describes one artifact deployment
type DeployResult struct {
	Package     string
	Source      ArtifactSet
	Destination ArtifactSet
	DryRun      bool

	Binaries CopyStats
	Launch   *CopyStats
	Config   *ConfigOutcome

	// Skipped maps an artifact kind to the reason its step did not run
	Skipped map[ArtifactKind]string
}

// NewDeployResult creates an empty result for the given artifact sets
func NewDeployResult(src, dst ArtifactSet) *DeployResult {
	return &DeployResult{
		Package:     src.Package,
		Source:      src,
		Destination: dst,
		Skipped:     make(map[ArtifactKind]string),
	}
}
