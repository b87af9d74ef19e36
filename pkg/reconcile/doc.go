// Package reconcile merges a flat source config directory into a
// destination directory without silently destroying destination data.
//
// Files are classified once per pass by content: identical files are left
// alone, source-only files are copied and conflicting files are only
// overwritten after the operator accepts a diff. Destination-only files
// are never touched.
package reconcile
