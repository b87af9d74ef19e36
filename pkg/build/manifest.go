package build

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/beevik/etree"
	"github.com/spf13/afero"
)

const (
	// ManifestFile is the ROS package manifest name
	ManifestFile = "package.xml"
	// ignoreMarker excludes a directory tree from package discovery
	ignoreMarker = "COLCON_IGNORE"
)

// Manifest is the subset of package.xml movex cares about
type Manifest struct {
	Name      string
	Version   string
	BuildType string
	// Dir is the directory holding package.xml
	Dir string
}

// ParseManifest reads a package.xml document
func ParseManifest(data []byte) (*Manifest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid package manifest")
	}

	root := doc.SelectElement("package")
	if root == nil {
		return nil, errors.New(errors.ErrInvalidInput, "package manifest has no <package> element")
	}

	m := &Manifest{
		Name:    childText(root, "name"),
		Version: childText(root, "version"),
	}
	if m.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "package manifest has no <name>")
	}
	if export := root.SelectElement("export"); export != nil {
		m.BuildType = childText(export, "build_type")
	}
	return m, nil
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// Discover returns every package manifest under srcDir sorted by name.
// Trees containing a COLCON_IGNORE file are skipped. Manifests that fail
// to parse are returned in invalid.
func Discover(fs afero.Fs, srcDir string) (manifests []*Manifest, invalid []string, err error) {
	err = afero.Walk(fs, srcDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			if _, err := fs.Stat(filepath.Join(path, ignoreMarker)); err == nil {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() != ManifestFile {
			return nil
		}

		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return err
		}
		m, err := ParseManifest(data)
		if err != nil {
			invalid = append(invalid, path)
			return nil
		}
		m.Dir = filepath.Dir(path)
		manifests = append(manifests, m)
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot scan %s for packages", srcDir)
	}

	sort.Slice(manifests, func(i, j int) bool { return manifests[i].Name < manifests[j].Name })
	return manifests, invalid, nil
}

// FindPackage returns the manifest of the package called name under srcDir
func FindPackage(fs afero.Fs, srcDir, name string) (*Manifest, error) {
	info, err := fs.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "package sources directory %s does not exist", srcDir).
			WithDetail("path", srcDir)
	}

	manifests, _, err := Discover(fs, srcDir)
	if err != nil {
		return nil, err
	}
	for _, m := range manifests {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "no package named %s under %s", name, srcDir).
		WithDetail("package", name)
}
