package descriptor

import (
	"log/slog"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Parse resolves the raw argument list against the declarations. It is a
// terminal operation: the Interface accepts no further declarations and no
// second Parse afterwards.
//
// A help request ("--help", or an empty argument list while a required
// option is unsatisfied) renders the usage document and returns a Resolved
// whose HelpShown reports true; the caller must exit 0 without running
// program logic. The first validation violation aborts resolution and is
// returned as one of the typed errors in this package.
func (i *Interface) Parse(argv []string) (*Resolved, error) {
	if i.parsed {
		return nil, configErrorf("parse called more than once")
	}
	i.parsed = true

	for _, tok := range argv {
		if tok == "--help" {
			i.usage()
			return &Resolved{iface: i, help: true}, nil
		}
	}
	if len(argv) == 0 && i.hasUnsatisfiedRequired() {
		i.usage()
		return &Resolved{iface: i, help: true}, nil
	}

	res := &Resolved{
		iface:   i,
		options: make(map[string]cty.Value),
		flags:   make(map[byte]bool),
	}
	supplied := make(map[string][]string)

	for _, tok := range argv {
		switch {
		case tok == "--overwrite":
			res.overwrite = true
		case tok == "--verbose":
			res.verbose = true
		case tok == "--quiet":
			res.quiet = true
		case strings.HasPrefix(tok, "--"):
			return nil, &UnknownOptionError{Token: tok}
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			for n := 1; n < len(tok); n++ {
				k := tok[n]
				if _, ok := i.flagByKey[k]; !ok {
					return nil, &UnknownFlagError{Key: k}
				}
				res.flags[k] = true
			}
		case strings.Contains(tok, "="):
			key, value, _ := strings.Cut(tok, "=")
			opt, ok := i.byKey[key]
			if !ok {
				return nil, &UnknownOptionError{Token: key}
			}
			if !opt.spec.Multiple && len(supplied[key]) > 0 {
				return nil, &DuplicateOptionError{Key: key}
			}
			supplied[key] = append(supplied[key], value)
		default:
			return nil, &UnknownOptionError{Token: tok}
		}
	}

	for _, opt := range i.options {
		literals, ok := supplied[opt.spec.Key]
		if !ok {
			if opt.spec.Default != "" {
				literals = []string{opt.spec.Default}
			} else if opt.required {
				return nil, &MissingRequiredOptionError{Key: opt.spec.Key}
			} else {
				continue
			}
		}
		val, err := resolveOption(opt, literals)
		if err != nil {
			return nil, err
		}
		res.options[opt.spec.Key] = val
	}

	slog.Debug("Arguments resolved.", "program", i.name, "options", len(res.options), "flags", len(res.flags))
	return res, nil
}

// resolveOption coerces the supplied literals for a single option. A
// multiple option splits every occurrence on commas and coerces each element
// on its own; a single option keeps its one literal verbatim, commas
// included.
func resolveOption(opt *option, literals []string) (cty.Value, error) {
	if !opt.spec.Multiple {
		return coerce(opt, literals[0])
	}
	var vals []cty.Value
	for _, lit := range literals {
		for _, part := range strings.Split(lit, ",") {
			v, err := coerce(opt, part)
			if err != nil {
				return cty.NilVal, err
			}
			vals = append(vals, v)
		}
	}
	return cty.ListVal(vals), nil
}

func coerce(opt *option, literal string) (cty.Value, error) {
	val, err := convert.Convert(cty.StringVal(literal), opt.spec.Type.ctyType())
	if err != nil {
		return cty.NilVal, &TypeCoercionError{Key: opt.spec.Key, Literal: literal, Want: opt.spec.Type}
	}
	if opt.spec.Type == TypeInteger && !val.AsBigFloat().IsInt() {
		return cty.NilVal, &TypeCoercionError{Key: opt.spec.Key, Literal: literal, Want: opt.spec.Type}
	}
	return val, nil
}
