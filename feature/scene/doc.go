// Package scene maps downloaded video media onto Stash scenes.
//
// Stash owns the files: it scans the archive and creates scenes for them.
// This package attaches metadata to those scenes, so processing never
// creates a scene for a file Stash has not scanned yet; such media are
// reported as soft errors and picked up on a later run.
//
// # Dedup order
//
//  1. Scene code equal to the source media ID (authoritative once stamped).
//  2. File basename match via a path regex search.
//
// Bulk runs fan out over the bounded worker pool and report progress to the
// run registry.
package scene
