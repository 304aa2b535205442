package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gisparse/descriptor"
	"github.com/vk/gisparse/hcldesc"
	"github.com/vk/gisparse/internal/ctxlog"
	"github.com/vk/gisparse/internal/fsutil"
)

// App encapsulates the binary's dependencies, configuration, and lifecycle.
// Resolved values go to outW; logs go to errW so shell consumers can eval
// the output safely.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	iface  *descriptor.Interface
	config *Config
}

// New constructs an App: it configures the logger, locates the descriptor
// file, and builds the declared interface from it.
func New(outW, errW io.Writer, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	path, err := fsutil.FindDescriptor(appConfig.DescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("failed to locate descriptor: %w", err)
	}
	logger.Debug("Descriptor file located.", "path", path)

	iface, err := hcldesc.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor: %w", err)
	}
	iface.SetOutput(outW)
	logger.Debug("Interface descriptor loaded.", "name", iface.Name())

	return &App{
		outW:   outW,
		logger: logger,
		iface:  iface,
		config: appConfig,
	}, nil
}

// Interface returns the loaded interface. This is primarily for testing.
func (a *App) Interface() *descriptor.Interface {
	return a.iface
}

// Run resolves the script arguments and emits the result. A help request
// emits the usage document and nothing else; a validation failure is
// returned to the caller for a non-zero exit.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	resolved, err := a.iface.Parse(a.config.ScriptArgs)
	if err != nil {
		return err
	}
	if resolved.HelpShown() {
		a.logger.Debug("Usage document shown, no values emitted.")
		return nil
	}

	switch a.config.Format {
	case "json":
		err = writeJSON(a.outW, a.iface, resolved)
	default:
		err = writeShell(a.outW, a.iface, resolved)
	}
	if err != nil {
		return fmt.Errorf("failed to emit resolved values: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
