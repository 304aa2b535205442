// Package app contains the core logic of the gisparse binary. It loads the
// interface descriptor, resolves the script arguments against it, and emits
// the resolved values for shell or JSON consumption, decoupled from the CLI
// entrypoint.
package app
