// Package source provides stand-ins for the platform collaborator that
// reads raw display metrics.
//
// Each source yields a domain.Snapshot once; none of them classifies
// anything. Three sources are provided:
//
//   - Static, a fixed snapshot (CLI flags, tests)
//   - File, a JSON or YAML document on disk
//   - Env, DISPLAYINFO_SNAPSHOT_* environment variables
package source
