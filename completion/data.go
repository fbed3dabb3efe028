// Package completion generates shell completion scripts for the options of a commando.Command
package completion

// Value is a suggested value for a flag
type Value struct {
	Pattern     string
	Description string
}

// Flag describes a named option and its aliases
type Flag struct {
	Names       []string // as typed: -f, --foo
	Description string
	TakesValue  bool
	Repeatable  bool
	File        bool
	Values      []Value
}

// Data holds the completion data of every named option in help order
type Data struct {
	Flags []Flag
}

// Names returns every flag name in order
func (d Data) Names() []string {
	var names []string
	for _, flag := range d.Flags {
		names = append(names, flag.Names...)
	}

	return names
}

// Short returns the single-dash names of the flag without the dash
func (f Flag) Short() []string {
	var names []string
	for _, name := range f.Names {
		if len(name) > 1 && name[0] == '-' && name[1] != '-' {
			names = append(names, name[1:])
		}
	}

	return names
}

// Long returns the double-dash names of the flag without the dashes
func (f Flag) Long() []string {
	var names []string
	for _, name := range f.Names {
		if len(name) > 2 && name[:2] == "--" {
			names = append(names, name[2:])
		}
	}

	return names
}

// Generator renders Data as a script for one shell
type Generator interface {
	Generate(programName string, data Data) string
}
