// Package filesystem provides the filesystem used by movex.
//
// All core packages operate on an afero.Fs so that deployments and
// reconciliations can be exercised against an in-memory tree in tests
// and against the real target mount in production. On top of that it
// offers the two primitives the deployer needs: an additive recursive
// merge copy and content digests for equality checks.
package filesystem
