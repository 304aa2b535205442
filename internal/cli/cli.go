package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gisparse/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes the binary's command-line arguments. It returns a
// populated Config, a boolean indicating the program should exit cleanly
// (help was shown), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gisparse", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gisparse - resolves script arguments against an interface descriptor.

Usage:
  gisparse [options] DESCRIPTOR [--] [SCRIPT_ARGS...]

Arguments:
  DESCRIPTOR
    Path to an .hcl interface descriptor file, or a directory containing
    exactly one.
  SCRIPT_ARGS
    Arguments of the script being described, in the key=value/-flags
    grammar declared by the descriptor.

Options:
`)
		flagSet.PrintDefaults()
	}

	descriptorFlag := flagSet.String("descriptor", "", "Path to the interface descriptor file or directory.")
	formatFlag := flagSet.String("format", "shell", "Output format for resolved values. Options: 'shell' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	rest := flagSet.Args()
	path := *descriptorFlag
	if path == "" {
		if len(rest) == 0 {
			slog.Debug("No descriptor path provided, printing usage and exiting.")
			flagSet.Usage()
			return nil, true, nil
		}
		path = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	slog.Debug("Descriptor path determined.", "path", path)

	format := strings.ToLower(*formatFlag)
	if format != "shell" && format != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'shell' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DescriptorPath: path,
		Format:         format,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		ScriptArgs:     rest,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
