package types

import (
	"strconv"
	"unicode/utf8"
)

// TokenType classifies a command-line token or the identity of an option
type TokenType int

// String returns the string representation of a TokenType
func (t TokenType) String() string {
	switch t {
	case Short:
		return "short"
	case Long:
		return "long"
	case Argument:
		return "argument"
	default:
		return "unknown"
	}
}

// IsNamed is true for Short and Long tokens
func (t TokenType) IsNamed() bool {
	return t == Short || t == Long
}

const (
	Short    TokenType = 1 // Short denotes a single-character name preceded by a single '-'
	Long     TokenType = 2 // Long denotes a multi-character name preceded by '--'
	Argument TokenType = 4 // Argument denotes a positional literal
)

// Key identifies an Option either by name or by positional index.
// The zero value is the Key of the first positional argument.
type Key struct {
	name  string
	index int
}

// Name returns the Key of a named option
func Name(name string) Key {
	return Key{name: name, index: -1}
}

// Index returns the Key of a positional option
func Index(index int) Key {
	return Key{index: index}
}

// IsIndex is true when the Key denotes a positional option
func (k Key) IsIndex() bool {
	return k.name == ""
}

// IsValid is false for empty names and negative indexes
func (k Key) IsValid() bool {
	return k.index >= 0 || k.name != ""
}

// Index returns the positional index of the Key or -1 when the Key is named
func (k Key) Index() int {
	if k.IsIndex() {
		return k.index
	}

	return -1
}

// Name returns the name of the Key or an empty string when the Key is positional
func (k Key) Name() string {
	return k.name
}

// Type returns Argument for positional keys, Short for single-character names and Long otherwise
func (k Key) Type() TokenType {
	if k.IsIndex() {
		return Argument
	}
	if utf8.RuneCountInString(k.name) == 1 {
		return Short
	}

	return Long
}

// String returns the name or the decimal index of the Key
func (k Key) String() string {
	if k.IsIndex() {
		return strconv.Itoa(k.index)
	}

	return k.name
}

// Flag returns the name of the Key as it would be typed on the command-line (-f, --foo or the index)
func (k Key) Flag() string {
	switch k.Type() {
	case Short:
		return "-" + k.name
	case Long:
		return "--" + k.name
	default:
		return k.String()
	}
}

// ParseKey returns an Index key for non-negative decimal strings and a Name key otherwise
func ParseKey(s string) Key {
	if s == "" {
		return Name(s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Name(s)
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		return Index(i)
	}

	return Name(s)
}
