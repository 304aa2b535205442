// Command viewshed-points is a worked example of the toolkit: for every
// point of a vector map it runs the platform's viewshed command against an
// elevation model and reports the number of visible cells. It shows the full
// script shape: declare the interface, parse argv, create temporary maps,
// and guarantee their cleanup on every exit path.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/gisparse/descriptor"
	"github.com/vk/gisparse/gisrun"
	"github.com/vk/gisparse/internal/ctxlog"
	"github.com/vk/gisparse/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func declareInterface() (*descriptor.Interface, error) {
	iface := descriptor.New("viewshed-points")
	if err := iface.DeclareModule("Computes viewshed at the points of a vector map.", "raster", "viewshed", "visibility"); err != nil {
		return nil, err
	}
	if err := iface.DeclareOption(descriptor.OptionSpec{
		Key:         "elevation",
		Type:        descriptor.TypeText,
		Description: "Name of input elevation raster map",
		KeyHint:     "name",
	}); err != nil {
		return nil, err
	}
	if err := iface.DeclareOption(descriptor.OptionSpec{
		Key:         "points",
		Type:        descriptor.TypeText,
		Description: "Name of input vector points map",
		KeyHint:     "name",
	}); err != nil {
		return nil, err
	}
	if err := iface.DeclareOption(descriptor.OptionSpec{
		Key:         "max_distance",
		Type:        descriptor.TypeDouble,
		Default:     "-1",
		Description: "Maximum visibility radius. By default infinity (-1)",
		KeyHint:     "value",
	}); err != nil {
		return nil, err
	}
	if err := iface.DeclareFlag("c", "Consider the curvature of the earth"); err != nil {
		return nil, err
	}
	return iface, nil
}

func run(outW io.Writer, args []string) (retErr error) {
	iface, err := declareInterface()
	if err != nil {
		return err
	}
	iface.SetOutput(outW)

	res, err := iface.Parse(args)
	if err != nil {
		return err
	}
	if res.HelpShown() {
		return nil
	}

	level := slog.LevelInfo
	if res.Verbose() {
		level = slog.LevelDebug
	} else if res.Quiet() {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sess := session.New()
	defer func() {
		// Temporary maps are released whether the body succeeded or not.
		if cerr := sess.Cleanup(ctx); cerr != nil {
			retErr = errors.Join(retErr, cerr)
		}
	}()

	return computeViewsheds(ctx, outW, res, sess)
}

func computeViewsheds(ctx context.Context, outW io.Writer, res *descriptor.Resolved, sess *session.Session) error {
	logger := ctxlog.FromContext(ctx)
	runner := &gisrun.Runner{Stderr: os.Stderr}

	coords, err := runner.Output(ctx, gisrun.Command{
		Name: "v.out.ascii",
		Options: map[string]string{
			"input":     res.String("points"),
			"separator": ",",
		},
	})
	if err != nil {
		return err
	}

	tmp := sess.TempName("viewshed")
	sess.TrackCleanup(tmp, runner.RemoveFunc("g.remove", "raster", tmp))

	for _, line := range strings.Split(coords, "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		x, y, cat := parts[0], parts[1], parts[2]
		logger.Debug("Computing viewshed.", "category", cat, "x", x, "y", y)

		cmd := gisrun.Command{
			Name: "r.viewshed",
			Options: map[string]string{
				"input":        res.String("elevation"),
				"output":       tmp,
				"coordinates":  x + "," + y,
				"max_distance": res.String("max_distance"),
			},
			Flags:     "b",
			Overwrite: true,
		}
		if res.Flag('c') {
			cmd.Flags += "c"
		}
		if err := runner.Run(ctx, cmd); err != nil {
			return err
		}

		visible, err := runner.Output(ctx, gisrun.Command{
			Name:    "r.stats",
			Options: map[string]string{"input": tmp},
			Flags:   "c",
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(outW, "%s: %s\n", cat, countVisible(visible))
	}
	return nil
}

// countVisible extracts the cell count of the visible category (value 1)
// from `r.stats -c` output, which has one "value count" pair per line.
func countVisible(stats string) string {
	for _, line := range strings.Split(stats, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == "1" {
			return fields[1]
		}
	}
	return "0"
}
