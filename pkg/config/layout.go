package config

import (
	"path/filepath"

	"github.com/arthur-debert/movex/pkg/types"
)

// SourceArtifacts derives the artifact trees of pkg inside a development root:
//
//	<src>/<build_base>/<pkg>
//	<src>/<install_base>/<pkg>/share/<pkg>/{launch,config}
func (l Layout) SourceArtifacts(srcRoot, pkg string) types.ArtifactSet {
	share := filepath.Join(srcRoot, l.InstallBase, pkg, l.ShareDir, pkg)
	return types.ArtifactSet{
		Package:  pkg,
		Binaries: filepath.Join(srcRoot, l.BuildBase, pkg),
		Launch:   filepath.Join(share, l.LaunchDir),
		Config:   filepath.Join(share, l.ConfigDir),
	}
}

// DestArtifacts derives the artifact trees of pkg under a deployment root:
//
//	<dst>/usr/lib/<pkg>
//	<dst>/usr/share/<pkg>/{launch,config}
func (l Layout) DestArtifacts(dstRoot, pkg string) types.ArtifactSet {
	marker := l.Marker(dstRoot)
	share := filepath.Join(marker, l.ShareDir, pkg)
	return types.ArtifactSet{
		Package:  pkg,
		Binaries: filepath.Join(marker, l.LibDir, pkg),
		Launch:   filepath.Join(share, l.LaunchDir),
		Config:   filepath.Join(share, l.ConfigDir),
	}
}

// Marker returns the marker directory path under dstRoot
func (l Layout) Marker(dstRoot string) string {
	return filepath.Join(dstRoot, l.MarkerDir)
}

// PackageSources returns the directory scanned for package manifests
func (l Layout) PackageSources(srcRoot string) string {
	return filepath.Join(srcRoot, "src")
}
