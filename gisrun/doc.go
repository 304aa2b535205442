// Package gisrun invokes the compiled commands of the host geoprocessing
// platform. It renders the platform's key=value/-flags argument grammar,
// runs commands with context support, and produces cleanup functions for
// temporary maps so scripts can hand them to a session.
package gisrun
