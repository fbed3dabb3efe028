package commando

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/napalu/commando/errs"
	"gopkg.in/yaml.v3"
)

// Declarations describes the options of a Command in a configuration file, e.g. in YAML:
//
//	help: Greets people.
//	options:
//	  - name: t
//	    aliases: [title]
//	    choices: [Mr, Ms, Dr]
//	  - name: v
//	    increment: 3
//	  - index: 0
//	    title: name
//	    required: true
type Declarations struct {
	Help    string              `yaml:"help" toml:"help"`
	Options []OptionDeclaration `yaml:"options" toml:"options"`
}

// OptionDeclaration describes one option. Without name and index the next nameless positional
// argument is declared.
type OptionDeclaration struct {
	Name        string           `yaml:"name" toml:"name"`
	Index       *int             `yaml:"index" toml:"index"`
	Aliases     []string         `yaml:"aliases" toml:"aliases"`
	Title       string           `yaml:"title" toml:"title"`
	Description string           `yaml:"description" toml:"description"`
	Required    bool             `yaml:"required" toml:"required"`
	Boolean     bool             `yaml:"boolean" toml:"boolean"`
	Increment   *int             `yaml:"increment" toml:"increment"` // the cap, 0 for none
	File        *FileDeclaration `yaml:"file" toml:"file"`
	Needs       []string         `yaml:"needs" toml:"needs"`
	Choices     []string         `yaml:"choices" toml:"choices"`
	Default     any              `yaml:"default" toml:"default"`
}

// FileDeclaration holds the arguments of OptionBuilder.File
type FileDeclaration struct {
	Exists bool `yaml:"exists" toml:"exists"`
	Glob   bool `yaml:"glob" toml:"glob"`
}

// DeclareYAML declares the options described by the YAML document read from r. Unknown fields are
// rejected.
func (c *Command) DeclareYAML(r io.Reader) error {
	var d Declarations
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return c.declarationError(err)
	}

	return c.Declare(d)
}

// DeclareTOML declares the options described by the TOML document read from r. Options are given
// as an array of tables ([[options]]). Unknown fields are rejected.
func (c *Command) DeclareTOML(r io.Reader) error {
	var d Declarations
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return c.declarationError(err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		err := errs.ErrUnknownField.WithArgs(strings.Join(keys, ", "))
		c.usageErrs = append(c.usageErrs, err)
		return err
	}

	return c.Declare(d)
}

// Declare applies d to the Command and returns the first declaration error
func (c *Command) Declare(d Declarations) error {
	if d.Help != "" {
		c.SetHelp(d.Help)
	}

	for _, od := range d.Options {
		var b *OptionBuilder
		switch {
		case od.Index != nil:
			b = c.ArgumentAt(*od.Index)
		case od.Name == "":
			b = c.Argument()
		default:
			b = c.Option(od.Name)
		}

		b.Alias(od.Aliases...).Needs(od.Needs...)
		if od.Title != "" {
			b.Title(od.Title)
		}
		if od.Description != "" {
			b.Describe(od.Description)
		}
		if od.Required {
			b.Require()
		}
		if od.Boolean {
			b.Boolean()
		}
		if od.Increment != nil {
			b.Increment(*od.Increment)
		}
		if od.File != nil {
			b.File(od.File.Exists, od.File.Glob)
		}
		if len(od.Choices) > 0 {
			b.Choices(od.Choices...)
		}
		if od.Default != nil {
			b.Default(normalizeDefault(od.Default))
		}
		if b.Err() != nil {
			return b.Err()
		}
	}

	return nil
}

// declarationError records a document which could not be read as a usage error
func (c *Command) declarationError(err error) error {
	err = errs.ErrInvalidDeclarations.Wrap(err)
	c.usageErrs = append(c.usageErrs, err)

	return err
}

// normalizeDefault converts the int64 integers produced by the TOML decoder to int
func normalizeDefault(value any) any {
	if i, ok := value.(int64); ok {
		return int(i)
	}

	return value
}
