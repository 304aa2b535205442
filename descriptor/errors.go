package descriptor

import "fmt"

// ConfigurationError reports misuse of the declaration API. It is a
// programmer defect: the caller is expected to abort before any program
// logic runs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "interface configuration: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownOptionError reports an argument token that matched no declared
// option.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Token)
}

// UnknownFlagError reports a flag character that matched no declared flag.
type UnknownFlagError struct {
	Key byte
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag -%c", e.Key)
}

// MissingRequiredOptionError reports a required option that was neither
// supplied nor defaulted.
type MissingRequiredOptionError struct {
	Key string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("required option %q not given", e.Key)
}

// DuplicateOptionError reports an option declared multiple=false that was
// supplied more than once.
type DuplicateOptionError struct {
	Key string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %q given more than once", e.Key)
}

// TypeCoercionError reports a supplied value that could not be coerced to
// the option's declared type.
type TypeCoercionError struct {
	Key     string
	Literal string
	Want    OptionType
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("option %q: %q is not a valid %s value", e.Key, e.Literal, e.Want)
}
