// Package session provides a caller-owned cleanup context for geoprocessing
// scripts. Scripts that create temporary maps or files register a release
// function for each one; deferring Cleanup guarantees release on both normal
// termination and error, replacing the fragile pattern of a process-global
// list torn down by an exit hook.
package session
