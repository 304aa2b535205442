package hcldesc

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/gisparse/descriptor"
	"github.com/vk/gisparse/internal/ctxlog"
)

// Load parses the descriptor file at path and builds the declared Interface.
// When the file carries no `name` attribute, the file name without its
// extension is used as the program name.
func Load(ctx context.Context, path string) (*descriptor.Interface, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding interface descriptor file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse descriptor file %s: %s", path, diags.Error())
	}

	var df descriptorFile
	if diags := gohcl.DecodeBody(file.Body, nil, &df); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode descriptor file %s: %s", path, diags.Error())
	}

	if df.Name == "" {
		base := filepath.Base(path)
		df.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return build(ctx, &df)
}

// Decode parses descriptor source held in memory, with filename used only
// for diagnostics.
func Decode(ctx context.Context, src []byte, filename string) (*descriptor.Interface, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding interface descriptor source.", "filename", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse descriptor %s: %s", filename, diags.Error())
	}

	var df descriptorFile
	if diags := gohcl.DecodeBody(file.Body, nil, &df); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode descriptor %s: %s", filename, diags.Error())
	}

	if df.Name == "" {
		df.Name = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	return build(ctx, &df)
}

// build turns the decoded file into descriptor declarations, surfacing every
// declaration error unchanged.
func build(ctx context.Context, df *descriptorFile) (*descriptor.Interface, error) {
	logger := ctxlog.FromContext(ctx)
	iface := descriptor.New(df.Name)

	if df.Module != nil {
		if err := iface.DeclareModule(df.Module.Description, df.Module.Keywords...); err != nil {
			return nil, err
		}
	}

	for _, opt := range df.Options {
		typ, err := optionType(opt)
		if err != nil {
			return nil, err
		}
		def, err := defaultLiteral(opt)
		if err != nil {
			return nil, err
		}
		spec := descriptor.OptionSpec{
			Key:         opt.Key,
			Type:        typ,
			Required:    opt.Required,
			Multiple:    opt.Multiple,
			Default:     def,
			Description: opt.Description,
			KeyHint:     opt.KeyHint,
		}
		if err := iface.DeclareOption(spec); err != nil {
			return nil, err
		}
	}

	for _, fl := range df.Flags {
		if err := iface.DeclareFlag(fl.Key, fl.Description); err != nil {
			return nil, err
		}
	}

	logger.Debug("Interface descriptor built.", "name", df.Name, "options", len(df.Options), "flags", len(df.Flags))
	return iface, nil
}

func optionType(opt *optionBlock) (descriptor.OptionType, error) {
	switch opt.Type {
	case "", "text":
		return descriptor.TypeText, nil
	case "integer":
		return descriptor.TypeInteger, nil
	case "double":
		return descriptor.TypeDouble, nil
	default:
		return 0, fmt.Errorf("option %q: unsupported type %q (want text, integer, or double)", opt.Key, opt.Type)
	}
}

// defaultLiteral renders the HCL default value back into the literal form
// the parser coerces, so descriptor files and command lines go through the
// same validation path.
func defaultLiteral(opt *optionBlock) (string, error) {
	if opt.Default == nil || opt.Default.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(*opt.Default, cty.String)
	if err != nil {
		return "", fmt.Errorf("option %q: default cannot be rendered as a literal: %w", opt.Key, err)
	}
	return val.AsString(), nil
}
