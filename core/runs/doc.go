// Package runs tracks sync-run progress for the status endpoints.
//
// The sync services register a run before fanning out over the worker pool
// and report progress as items complete. The registry keeps finished runs in
// memory so operators can inspect recent history; nothing is persisted.
package runs
