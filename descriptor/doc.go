// Package descriptor implements the declarative command-line interface of a
// geoprocessing script: a module declaration, typed options, and
// single-character flags, resolved against the process argument list. The
// argument grammar is the conventional one for GIS platform commands:
// key=value pairs for options, -xyz for flags, plus the built-in --overwrite,
// --verbose, --quiet, and --help switches.
package descriptor
