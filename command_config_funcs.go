package commando

import (
	"io"

	"github.com/napalu/commando/internal/parse"
	"github.com/napalu/commando/types"

	"golang.org/x/text/language"
)

// WithTokens sets the tokens to parse. tokens[0] is the program name.
func WithTokens(tokens []string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetTokens(tokens)
	}
}

// WithTokenString sets the tokens to parse from a command line split using shell quoting rules
func WithTokenString(commandLine string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		var tokens []string
		tokens, *err = parse.Split(commandLine)
		if *err == nil {
			cmd.SetTokens(tokens)
		}
	}
}

// WithErrorTrap when false, parse errors are returned by Parse instead of being printed
func WithErrorTrap(trap bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.TrapErrors(trap)
	}
}

// WithBeep toggles the terminal bell on parse errors
func WithBeep(beep bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.BeepOnError(beep)
	}
}

// WithDefaultHelp toggles the automatic -h/--help option
func WithDefaultHelp(enabled bool) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.UseDefaultHelp(enabled)
	}
}

// WithHelpText sets the text displayed below the program name on the help screen
func WithHelpText(text string) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetHelp(text)
	}
}

// WithStdout sets the writer used for help output
func WithStdout(w io.Writer) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetStdout(w)
	}
}

// WithStderr sets the writer used for error output
func WithStderr(w io.Writer) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetStderr(w)
	}
}

// WithRenderer replaces the default Renderer
func WithRenderer(renderer Renderer) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetRenderer(renderer)
	}
}

// WithLanguage sets the language of error and help messages
func WithLanguage(lang language.Tag) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		cmd.SetLanguage(lang)
	}
}

// WithOption declares the named option (decimal names denote positional arguments) configured by configs
func WithOption(name string, configs ...ConfigureOptionFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		*err = register(cmd, types.ParseKey(name), configs)
	}
}

// WithArgument declares the positional argument at index configured by configs
func WithArgument(index int, configs ...ConfigureOptionFunc) ConfigureCommandFunc {
	return func(cmd *Command, err *error) {
		*err = register(cmd, types.Index(index), configs)
	}
}

func register(cmd *Command, key types.Key, configs []ConfigureOptionFunc) error {
	option, err := NewOption(key, configs...)
	if err != nil {
		return err
	}

	return cmd.Register(option)
}
