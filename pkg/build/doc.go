// Package build drives the containerised arm64 cross build of a ROS
// package and locates package manifests in a development tree.
//
// The build itself is opaque to movex: only success or failure matters.
package build
