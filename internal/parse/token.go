// Package parse classifies command-line tokens and splits command strings
package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/types"
)

var flagPattern = regexp.MustCompile(`^(-{1,2})([A-Za-z][A-Za-z0-9_-]*)$`)

// Token is a classified command-line token. Value holds the option name for Short and Long
// tokens and the literal for Argument tokens.
type Token struct {
	Type  types.TokenType
	Value string
	Raw   string
}

// Classify determines whether raw is a short flag (group), a long flag or a positional argument.
// A token which starts with '-' but is not a well-formed flag yields errs.ErrSyntax.
func Classify(raw string) (Token, error) {
	if !strings.HasPrefix(raw, "-") {
		return Token{Type: types.Argument, Value: raw, Raw: raw}, nil
	}

	m := flagPattern.FindStringSubmatch(raw)
	if m == nil {
		return Token{}, errs.ErrSyntax.WithArgs(raw)
	}

	t := Token{Type: types.Short, Value: m[2], Raw: raw}
	if len(m[1]) == 2 {
		t.Type = types.Long
	}

	return t, nil
}

// IsGroup is true for short tokens naming more than one flag (-vvv)
func (t Token) IsGroup() bool {
	return t.Type == types.Short && utf8.RuneCountInString(t.Value) > 1
}

// SplitGroup returns the first flag name of a short group and the remaining members as
// single-flag tokens (-b, -c, ...) in their original order
func (t Token) SplitGroup() (string, []string) {
	if !t.IsGroup() {
		return t.Value, nil
	}

	runes := []rune(t.Value)
	rest := make([]string, 0, len(runes)-1)
	for _, r := range runes[1:] {
		rest = append(rest, "-"+string(r))
	}

	return string(runes[0]), rest
}

// IsValue is true for tokens which may be consumed as an option's value
func (t Token) IsValue() bool {
	return t.Type == types.Argument
}
