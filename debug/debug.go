//go:build !debug

// Package debug exposes the build-time debug flag. Building with the "debug"
// tag keeps logging enabled under go test and turns on per-line parser traces.
package debug

const Debug = false
