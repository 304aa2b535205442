// Package cli is responsible for parsing the gisparse binary's own
// command-line arguments, validating them, and handling process-level
// concerns like exit codes. The script-facing argument grammar is not
// handled here; that is the descriptor package's job.
package cli
