// Package deploy copies the artifacts of one package from a development
// tree into a target root filesystem.
//
// Binaries and launch files are build output and are merged in wholesale
// after a single confirmation. Config files hold operator edits and go
// through the reconcile package, one prompt per conflicting file, even
// when the top-level confirmation is forced.
package deploy
