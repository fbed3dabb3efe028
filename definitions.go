package commando

import (
	"github.com/napalu/commando/types"
)

// RuleFunc validates a raw value before it is stored. Returning false rejects the value.
type RuleFunc func(value any) bool

// MapFunc transforms a validated value. The result is what the Option stores.
type MapFunc func(value any) any

// ConfigureOptionFunc is used when defining Option values
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureCommandFunc is used when defining Command values
type ConfigureCommandFunc func(cmd *Command, err *error)

// LookupFunc resolves an option by name - used when checking needs
type LookupFunc func(name string) (*Option, bool)

// RangeFunc is called for every option key in natural order. Returning false stops the iteration.
type RangeFunc func(key types.Key, value any) bool

// Renderer formats help and error text
type Renderer interface {
	// CommandHelp returns the full help screen of the Command the Renderer belongs to
	CommandHelp() string
	// OptionHelp returns the help entry of a single Option
	OptionHelp(option *Option) string
	// TerminalError formats err for display on a terminal
	TerminalError(err error) string
}

// NeedsResult is the outcome of Option.HasNeeds: either satisfied or the list of unmet names
type NeedsResult struct {
	unmet []string
}

// Satisfied is true when every needed option holds a truthy value
func (r NeedsResult) Satisfied() bool {
	return len(r.unmet) == 0
}

// Unmet returns the names of needed options which are undeclared or unset, in declaration order
func (r NeedsResult) Unmet() []string {
	return r.unmet
}

// Exit statuses returned by Command.Parse
const (
	StatusOK    = 0
	StatusError = 1
)

// Names of the default help option
const (
	HelpName      = "help"
	HelpShortName = "h"
)
