package hcldesc

import "github.com/zclconf/go-cty/cty"

// moduleBlock is the `module` block of a descriptor file.
type moduleBlock struct {
	Description string   `hcl:"description"`
	Keywords    []string `hcl:"keywords,optional"`
}

// optionBlock is an `option` block of a descriptor file.
type optionBlock struct {
	Key         string     `hcl:"key,label"`
	Type        string     `hcl:"type,optional"`
	Required    *bool      `hcl:"required,optional"`
	Multiple    bool       `hcl:"multiple,optional"`
	Default     *cty.Value `hcl:"default,optional"`
	Description string     `hcl:"description,optional"`
	KeyHint     string     `hcl:"key_hint,optional"`
}

// flagBlock is a `flag` block of a descriptor file.
type flagBlock struct {
	Key         string `hcl:"key,label"`
	Description string `hcl:"description,optional"`
}

// descriptorFile is the top-level structure of a descriptor file.
type descriptorFile struct {
	Name    string         `hcl:"name,optional"`
	Module  *moduleBlock   `hcl:"module,block"`
	Options []*optionBlock `hcl:"option,block"`
	Flags   []*flagBlock   `hcl:"flag,block"`
}
