package reconcile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/movex/pkg/errors"
	"github.com/arthur-debert/movex/pkg/filesystem"
	"github.com/arthur-debert/movex/pkg/logging"
	"github.com/arthur-debert/movex/pkg/types"
	"github.com/spf13/afero"
)

// Plan is the classification of one source directory against a
// destination directory
type Plan struct {
	Source string
	Dest   string
	// Entries are sorted by name
	Entries []types.ReconciliationEntry
	// Unmergeable lists source files whose destination name is taken by
	// a directory or other non-regular entry
	Unmergeable []string
}

// Names returns the names of entries with classification c, in order
func (p *Plan) Names(c types.Classification) []string {
	var names []string
	for _, entry := range p.Entries {
		if entry.Classification == c {
			names = append(names, entry.Name)
		}
	}
	return names
}

// Classify compares the regular files directly inside srcDir with the
// same names in dstDir. Subdirectories are not descended into. Content is
// compared in full, never by timestamp.
func Classify(fs afero.Fs, srcDir, dstDir string) (*Plan, error) {
	logger := logging.GetLogger("reconcile")

	if !filesystem.IsDir(fs, srcDir) {
		return nil, errors.Newf(errors.ErrSourceMissing, "source directory %s does not exist", srcDir).
			WithDetail("path", srcDir)
	}
	if !filesystem.IsDir(fs, dstDir) {
		return nil, errors.Newf(errors.ErrDestinationMissing, "destination directory %s does not exist", dstDir).
			WithDetail("path", dstDir)
	}

	infos, err := afero.ReadDir(fs, srcDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", srcDir)
	}

	plan := &Plan{Source: srcDir, Dest: dstDir}
	for _, info := range infos {
		name := info.Name()
		srcPath := filepath.Join(srcDir, name)
		dstPath := filepath.Join(dstDir, name)

		if !filesystem.IsRegular(fs, srcPath) {
			logger.Debug().Str("name", name).Msg("Ignoring non-regular source entry")
			continue
		}

		entry := types.ReconciliationEntry{Name: name, SourcePath: srcPath, DestPath: dstPath}

		dstInfo, err := fs.Stat(dstPath)
		switch {
		case os.IsNotExist(err):
			entry.Classification = types.SourceOnly
		case err != nil:
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dstPath)
		case !dstInfo.Mode().IsRegular():
			plan.Unmergeable = append(plan.Unmergeable, name)
			continue
		default:
			same, err := filesystem.SameContent(fs, srcPath, dstPath)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot compare %s", name)
			}
			entry.Classification = types.Conflicting
			if same {
				entry.Classification = types.Identical
			}
		}
		plan.Entries = append(plan.Entries, entry)
	}

	sort.Slice(plan.Entries, func(i, j int) bool { return plan.Entries[i].Name < plan.Entries[j].Name })
	sort.Strings(plan.Unmergeable)

	logger.Debug().
		Str("source", srcDir).
		Str("dest", dstDir).
		Int("identical", len(plan.Names(types.Identical))).
		Int("conflicting", len(plan.Names(types.Conflicting))).
		Int("source_only", len(plan.Names(types.SourceOnly))).
		Int("unmergeable", len(plan.Unmergeable)).
		Msg("Config directory classified")
	return plan, nil
}
