package descriptor

import "github.com/zclconf/go-cty/cty"

// OptionType enumerates the value types an option may declare. The zero
// value is TypeText.
type OptionType int

const (
	TypeText OptionType = iota
	TypeInteger
	TypeDouble
)

// String returns the name used for the type in descriptor files and help text.
func (t OptionType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeDouble:
		return "double"
	default:
		return "invalid"
	}
}

func (t OptionType) valid() bool {
	return t == TypeText || t == TypeInteger || t == TypeDouble
}

// ctyType maps the option type onto the cty type system used for coercion.
// Integer and double both resolve through cty.Number; integers additionally
// require an integral value.
func (t OptionType) ctyType() cty.Type {
	if t == TypeText {
		return cty.String
	}
	return cty.Number
}

// OptionSpec declares a single named, typed option.
type OptionSpec struct {
	// Key uniquely identifies the option on the command line (key=value).
	Key string

	// Type of the value. Defaults to TypeText.
	Type OptionType

	// Required controls whether the option must be supplied. When nil the
	// option is required unless a Default is given. Setting it to true
	// together with a Default is a configuration error: a default implies
	// the option is optional.
	Required *bool

	// Multiple permits repeated key=value tokens and comma-joined values
	// within one token. It is allowed for every type; each element is
	// coerced to the declared type on its own.
	Multiple bool

	// Default is a literal substituted when the option is not supplied. It
	// goes through the same coercion as user input.
	Default string

	// Description is the long help text for the option.
	Description string

	// KeyHint is a short usage hint for the value, e.g. "name" or "value".
	KeyHint string
}

// FlagSpec declares a single-character boolean switch.
type FlagSpec struct {
	Key         byte
	Description string
}
