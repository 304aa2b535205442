package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gisparse/descriptor"
)

// writeShell emits resolved values as shell variable assignments in the
// conventional form consumed by eval in scripts:
//
//	GIS_OPT_ELEVATION='dem'
//	GIS_FLAG_C=1
//	GIS_FLAG_OVERWRITE=0
func writeShell(w io.Writer, iface *descriptor.Interface, res *descriptor.Resolved) error {
	for _, opt := range iface.Options() {
		name := "GIS_OPT_" + strings.ToUpper(opt.Key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, shellQuote(res.String(opt.Key))); err != nil {
			return err
		}
	}
	for _, fl := range iface.Flags() {
		name := fmt.Sprintf("GIS_FLAG_%c", toUpperByte(fl.Key))
		if _, err := fmt.Fprintf(w, "%s=%d\n", name, boolBit(res.Flag(fl.Key))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "GIS_FLAG_OVERWRITE=%d\n", boolBit(res.Overwrite())); err != nil {
		return err
	}
	return nil
}

// writeJSON emits resolved values typed: integers and doubles as JSON
// numbers, multiple options as arrays.
func writeJSON(w io.Writer, iface *descriptor.Interface, res *descriptor.Resolved) error {
	options := make(map[string]any)
	for _, opt := range iface.Options() {
		if !res.Has(opt.Key) {
			continue
		}
		options[opt.Key] = jsonValue(opt, res)
	}

	flags := make(map[string]bool)
	for _, fl := range iface.Flags() {
		flags[string(fl.Key)] = res.Flag(fl.Key)
	}

	doc := struct {
		Module    string          `json:"module"`
		Options   map[string]any  `json:"options"`
		Flags     map[string]bool `json:"flags"`
		Overwrite bool            `json:"overwrite"`
	}{
		Module:    iface.Name(),
		Options:   options,
		Flags:     flags,
		Overwrite: res.Overwrite(),
	}

	enc := json.NewEncoder(w)
	return enc.Encode(doc)
}

func jsonValue(opt descriptor.OptionSpec, res *descriptor.Resolved) any {
	if opt.Multiple {
		switch opt.Type {
		case descriptor.TypeInteger:
			return res.Ints(opt.Key)
		case descriptor.TypeDouble:
			return res.Doubles(opt.Key)
		default:
			return res.Strings(opt.Key)
		}
	}
	switch opt.Type {
	case descriptor.TypeInteger:
		return res.Int(opt.Key)
	case descriptor.TypeDouble:
		return res.Double(opt.Key)
	default:
		return res.String(opt.Key)
	}
}

// shellQuote single-quotes a value so eval cannot interpret it, escaping
// embedded single quotes the POSIX way.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
