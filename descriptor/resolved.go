package descriptor

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Resolved is the validated, type-coerced result of parsing the argument
// list. It is created once per invocation and never mutated afterwards.
//
// The typed accessors panic when used against a key of a different declared
// type; that is a programmer defect, not user input, and mirrors the eager
// rejection of bad declarations.
type Resolved struct {
	iface     *Interface
	help      bool
	overwrite bool
	verbose   bool
	quiet     bool
	options   map[string]cty.Value
	flags     map[byte]bool
}

// HelpShown reports whether the usage document was rendered instead of
// resolving arguments. The caller must then exit 0 without running program
// logic.
func (r *Resolved) HelpShown() bool { return r.help }

// Overwrite reports the built-in --overwrite switch.
func (r *Resolved) Overwrite() bool { return r.overwrite }

// Verbose reports the built-in --verbose switch.
func (r *Resolved) Verbose() bool { return r.verbose }

// Quiet reports the built-in --quiet switch.
func (r *Resolved) Quiet() bool { return r.quiet }

// Has reports whether the option resolved to a value, either supplied or
// defaulted.
func (r *Resolved) Has(key string) bool {
	_, ok := r.options[key]
	return ok
}

// Flag reports whether the given flag was set.
func (r *Resolved) Flag(key byte) bool { return r.flags[key] }

// String returns the option's value rendered as a string, for any declared
// type. A multiple option renders as its elements comma-joined. An absent
// option returns "".
func (r *Resolved) String(key string) string {
	r.decl(key)
	val, ok := r.options[key]
	if !ok {
		return ""
	}
	if val.Type().IsListType() {
		var parts []string
		for _, el := range val.AsValueSlice() {
			parts = append(parts, renderString(el))
		}
		return strings.Join(parts, ",")
	}
	return renderString(val)
}

// Int returns the value of an integer option, or 0 when absent.
func (r *Resolved) Int(key string) int {
	val, ok := r.typedValue(key, TypeInteger)
	if !ok {
		return 0
	}
	n, _ := val.AsBigFloat().Int64()
	return int(n)
}

// Double returns the value of a double option, or 0 when absent.
func (r *Resolved) Double(key string) float64 {
	val, ok := r.typedValue(key, TypeDouble)
	if !ok {
		return 0
	}
	f, _ := val.AsBigFloat().Float64()
	return f
}

// Strings returns the elements of a multiple text option, or nil when
// absent.
func (r *Resolved) Strings(key string) []string {
	val, ok := r.multipleValue(key, TypeText)
	if !ok {
		return nil
	}
	var out []string
	for _, el := range val.AsValueSlice() {
		out = append(out, el.AsString())
	}
	return out
}

// Ints returns the elements of a multiple integer option, or nil when
// absent.
func (r *Resolved) Ints(key string) []int {
	val, ok := r.multipleValue(key, TypeInteger)
	if !ok {
		return nil
	}
	var out []int
	for _, el := range val.AsValueSlice() {
		n, _ := el.AsBigFloat().Int64()
		out = append(out, int(n))
	}
	return out
}

// Doubles returns the elements of a multiple double option, or nil when
// absent.
func (r *Resolved) Doubles(key string) []float64 {
	val, ok := r.multipleValue(key, TypeDouble)
	if !ok {
		return nil
	}
	var out []float64
	for _, el := range val.AsValueSlice() {
		f, _ := el.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out
}

// Value exposes the raw resolved cty value, for callers that feed it into
// further cty-based machinery.
func (r *Resolved) Value(key string) (cty.Value, bool) {
	r.decl(key)
	val, ok := r.options[key]
	return val, ok
}

func (r *Resolved) decl(key string) *option {
	opt, ok := r.iface.byKey[key]
	if !ok {
		panic(fmt.Sprintf("descriptor: option %q was never declared", key))
	}
	return opt
}

func (r *Resolved) typedValue(key string, want OptionType) (cty.Value, bool) {
	opt := r.decl(key)
	if opt.spec.Type != want {
		panic(fmt.Sprintf("descriptor: option %q is declared %s, accessed as %s", key, opt.spec.Type, want))
	}
	if opt.spec.Multiple {
		panic(fmt.Sprintf("descriptor: option %q is declared multiple, use the slice accessor", key))
	}
	val, ok := r.options[key]
	return val, ok
}

func (r *Resolved) multipleValue(key string, want OptionType) (cty.Value, bool) {
	opt := r.decl(key)
	if opt.spec.Type != want {
		panic(fmt.Sprintf("descriptor: option %q is declared %s, accessed as %s", key, opt.spec.Type, want))
	}
	if !opt.spec.Multiple {
		panic(fmt.Sprintf("descriptor: option %q is not declared multiple", key))
	}
	val, ok := r.options[key]
	return val, ok
}

func renderString(val cty.Value) string {
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		panic(fmt.Sprintf("descriptor: cannot render %s as string: %v", val.Type().FriendlyName(), err))
	}
	return s.AsString()
}
