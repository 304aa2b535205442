package descriptor

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// reservedKeys are owned by the built-in long switches and may not be used
// by option or flag declarations.
var reservedKeys = map[string]struct{}{
	"help":      {},
	"overwrite": {},
	"verbose":   {},
	"quiet":     {},
}

type moduleMeta struct {
	description string
	keywords    []string
}

type option struct {
	spec     OptionSpec
	required bool
}

// Interface holds the declared command-line surface of one program: module
// metadata, options, and flags. Declarations are made once at program start
// and are immutable afterwards; Parse is terminal.
//
// An Interface is not safe for concurrent use. A program owns exactly one
// instance for the lifetime of one invocation.
type Interface struct {
	name   string
	out    io.Writer
	module *moduleMeta

	options []*option
	byKey   map[string]*option

	flags     []FlagSpec
	flagByKey map[byte]FlagSpec

	parsed bool
}

// New creates an empty Interface for the program with the given name. Usage
// text is written to os.Stdout unless SetOutput is called.
func New(name string) *Interface {
	return &Interface{
		name:      name,
		out:       os.Stdout,
		byKey:     make(map[string]*option),
		flagByKey: make(map[byte]FlagSpec),
	}
}

// Name returns the program name the Interface was created with.
func (i *Interface) Name() string { return i.name }

// SetOutput redirects usage text, for callers that separate help output from
// program output.
func (i *Interface) SetOutput(w io.Writer) { i.out = w }

// DeclareModule registers the module metadata used for help text. It may be
// called at most once and the description must not be empty.
func (i *Interface) DeclareModule(description string, keywords ...string) error {
	if i.parsed {
		return configErrorf("declaration after parse")
	}
	if i.module != nil {
		return configErrorf("module already declared")
	}
	if strings.TrimSpace(description) == "" {
		return configErrorf("module description must not be empty")
	}
	i.module = &moduleMeta{description: description, keywords: keywords}
	slog.Debug("Declared module.", "name", i.name, "keywords", keywords)
	return nil
}

// DeclareOption registers a named option. The declaration is validated
// eagerly: a bad declaration is a programmer defect, not user input.
func (i *Interface) DeclareOption(spec OptionSpec) error {
	if i.parsed {
		return configErrorf("declaration after parse")
	}
	if spec.Key == "" {
		return configErrorf("option key must not be empty")
	}
	if strings.ContainsAny(spec.Key, "=- ") {
		return configErrorf("option key %q contains a reserved character", spec.Key)
	}
	if _, ok := reservedKeys[spec.Key]; ok {
		return configErrorf("option key %q is reserved", spec.Key)
	}
	if _, ok := i.byKey[spec.Key]; ok {
		return configErrorf("option key %q already declared", spec.Key)
	}
	if len(spec.Key) == 1 {
		if _, ok := i.flagByKey[spec.Key[0]]; ok {
			return configErrorf("option key %q already declared as a flag", spec.Key)
		}
	}
	if !spec.Type.valid() {
		return configErrorf("option %q: unsupported type", spec.Key)
	}

	// A default implies the option is optional; demanding both is
	// contradictory and rejected outright.
	required := spec.Default == ""
	if spec.Required != nil {
		if *spec.Required && spec.Default != "" {
			return configErrorf("option %q: required together with a default", spec.Key)
		}
		required = *spec.Required
	}

	opt := &option{spec: spec, required: required}
	i.options = append(i.options, opt)
	i.byKey[spec.Key] = opt
	slog.Debug("Declared option.", "key", spec.Key, "type", spec.Type.String(), "required", required)
	return nil
}

// DeclareFlag registers a single-character boolean switch.
func (i *Interface) DeclareFlag(key string, description string) error {
	if i.parsed {
		return configErrorf("declaration after parse")
	}
	if len(key) != 1 {
		return configErrorf("flag key %q must be a single character", key)
	}
	if _, ok := reservedKeys[key]; ok {
		return configErrorf("flag key %q is reserved", key)
	}
	k := key[0]
	if _, ok := i.flagByKey[k]; ok {
		return configErrorf("flag %q already declared", key)
	}
	if _, ok := i.byKey[key]; ok {
		return configErrorf("flag key %q already declared as an option", key)
	}
	spec := FlagSpec{Key: k, Description: description}
	i.flags = append(i.flags, spec)
	i.flagByKey[k] = spec
	slog.Debug("Declared flag.", "key", key)
	return nil
}

// Options returns the option declarations in declaration order.
func (i *Interface) Options() []OptionSpec {
	specs := make([]OptionSpec, len(i.options))
	for n, opt := range i.options {
		specs[n] = opt.spec
	}
	return specs
}

// Flags returns the flag declarations in declaration order.
func (i *Interface) Flags() []FlagSpec {
	return append([]FlagSpec(nil), i.flags...)
}

// Description returns the declared module description, or "" when no module
// was declared.
func (i *Interface) Description() string {
	if i.module == nil {
		return ""
	}
	return i.module.description
}

// hasUnsatisfiedRequired reports whether any declared option is required and
// carries no default, i.e. an empty argument list cannot possibly resolve.
func (i *Interface) hasUnsatisfiedRequired() bool {
	for _, opt := range i.options {
		if opt.required && opt.spec.Default == "" {
			return true
		}
	}
	return false
}
