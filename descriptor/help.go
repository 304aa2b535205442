package descriptor

import (
	"fmt"
	"io"
	"strings"
)

// usage renders the help document to the configured writer.
func (i *Interface) usage() {
	i.WriteUsage(i.out)
}

// WriteUsage writes the full usage document derived from the declarations:
// module description and keywords, the usage line, and one entry per option
// and flag including the built-in switches.
func (i *Interface) WriteUsage(w io.Writer) {
	if i.module != nil {
		fmt.Fprintf(w, "Description:\n %s\n\n", i.module.description)
		if len(i.module.keywords) > 0 {
			fmt.Fprintf(w, "Keywords:\n %s\n\n", strings.Join(i.module.keywords, ", "))
		}
	}

	fmt.Fprintf(w, "Usage:\n %s", i.name)
	for _, opt := range i.options {
		fmt.Fprintf(w, " %s", usageToken(opt))
	}
	for _, fl := range i.flags {
		fmt.Fprintf(w, " [-%c]", fl.Key)
	}
	fmt.Fprint(w, " [--overwrite] [--verbose] [--quiet] [--help]\n")

	if len(i.options) > 0 {
		fmt.Fprint(w, "\nParameters:\n")
		for _, opt := range i.options {
			fmt.Fprintf(w, "  %s=%s\t%s\n", opt.spec.Key, keyHint(opt.spec), opt.spec.Description)
			fmt.Fprintf(w, "  \t(%s)\n", attributes(opt))
		}
	}

	if len(i.flags) > 0 {
		fmt.Fprint(w, "\nFlags:\n")
		for _, fl := range i.flags {
			fmt.Fprintf(w, "  -%c\t%s\n", fl.Key, fl.Description)
		}
	}

	fmt.Fprint(w, "\n  --overwrite\tAllow output to overwrite existing data\n")
	fmt.Fprint(w, "  --verbose\tVerbose module output\n")
	fmt.Fprint(w, "  --quiet\tQuiet module output\n")
	fmt.Fprint(w, "  --help\tPrint this usage document\n")
}

func usageToken(opt *option) string {
	tok := fmt.Sprintf("%s=%s", opt.spec.Key, keyHint(opt.spec))
	if !opt.required {
		return "[" + tok + "]"
	}
	return tok
}

func keyHint(spec OptionSpec) string {
	hint := spec.KeyHint
	if hint == "" {
		hint = spec.Type.String()
	}
	if spec.Multiple {
		return hint + "[," + hint + ",...]"
	}
	return hint
}

func attributes(opt *option) string {
	parts := []string{opt.spec.Type.String()}
	if opt.required {
		parts = append(parts, "required")
	} else {
		parts = append(parts, "optional")
	}
	if opt.spec.Multiple {
		parts = append(parts, "multiple")
	}
	if opt.spec.Default != "" {
		parts = append(parts, "default: "+opt.spec.Default)
	}
	return strings.Join(parts, ", ")
}
