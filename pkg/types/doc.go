// Package types defines the data model shared by movex's components:
// block devices, artifact sets, reconciliation entries, expansion steps
// and the operator answers that drive every confirmation.
//
// The package holds no behaviour beyond small pure helpers so that the
// device selector, the reconciler, the deployer and the expander can all
// depend on it without depending on each other.
package types
