// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package commando defines and parses the flags, options and positional arguments of a command-line
// program.
//
// Options are declared on a Command, either fluently:
//
//	cmd := commando.New(os.Args)
//	cmd.Option("f").Alias("foo").Describe("the file to read").File(true, false).Require()
//	cmd.Flag("v").Increment(3)
//	cmd.Flag("dry-run").Boolean()
//
// or with configuration functions:
//
//	cmd, err := commando.NewWith(
//		commando.WithTokens(os.Args),
//		commando.WithOption("f", commando.WithAlias("foo"), commando.SetRequired(true)))
//
// Parsing is explicit (Parse) or happens on the first value access. A Command is not safe for
// concurrent use.
package commando

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/i18n"
	"github.com/napalu/commando/internal/parse"
	"github.com/napalu/commando/internal/util"
	"github.com/napalu/commando/types"
	"github.com/napalu/commando/types/orderedmap"

	"golang.org/x/text/language"
)

// Command holds the option declarations and the parse state of one invocation
type Command struct {
	name        string
	tokens      []string
	options     *orderedmap.OrderedMap[types.Key, *Option]
	index       *optionIndex
	nameless    int
	parsed      bool
	status      int
	err         error
	parseErr    error
	usageErrs   []error
	showedHelp  bool
	defaultHelp bool
	errorTrap   bool
	errorBeep   bool
	helpText    string
	stdout      io.Writer
	stderr      io.Writer
	renderer    Renderer
	lang        language.Tag
}

// New creates a Command parsing tokens. tokens[0] is the program name. When tokens is empty the
// arguments of the current process are used.
func New(tokens []string) *Command {
	c := &Command{
		options:     orderedmap.NewOrderedMap[types.Key, *Option](),
		defaultHelp: true,
		errorTrap:   true,
		errorBeep:   true,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		lang:        i18n.Default().DefaultLanguage(),
	}
	c.renderer = NewRenderer(c)
	c.SetTokens(tokens)

	return c
}

// NewWith creates a Command configured by configs. Without WithTokens (or WithTokenString) the
// arguments of the current process are parsed.
func NewWith(configs ...ConfigureCommandFunc) (*Command, error) {
	c := New(nil)

	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return nil, errs.ErrConfiguringCommand.Wrap(err)
		}
	}

	return c, nil
}

// NewFromString creates a Command from a command line, split using shell quoting rules
func NewFromString(commandLine string) (*Command, error) {
	tokens, err := parse.Split(commandLine)
	if err != nil {
		return nil, err
	}

	return New(tokens), nil
}

// SetTokens replaces the tokens to parse. An empty list falls back to the process arguments.
func (c *Command) SetTokens(tokens []string) {
	if len(tokens) == 0 {
		tokens = os.Args
	}
	c.tokens = append([]string(nil), tokens...)
}

// Tokens returns the tokens parsed by the Command
func (c *Command) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Option declares the option name or selects it when it already exists. Decimal names denote
// positional arguments. An empty name declares the next nameless positional argument.
func (c *Command) Option(name string) *OptionBuilder {
	if name == "" {
		return c.declare(types.Index(c.nextNameless()))
	}

	return c.declare(types.ParseKey(name))
}

// Flag declares (or selects) a named option. Numeric names are rejected with errs.ErrNumericFlag.
func (c *Command) Flag(name string) *OptionBuilder {
	key := types.ParseKey(name)
	if key.IsIndex() && key.IsValid() {
		return c.failed(errs.ErrNumericFlag.WithArgs(name))
	}

	return c.declare(key)
}

// Argument declares the next nameless positional argument
func (c *Command) Argument() *OptionBuilder {
	return c.declare(types.Index(c.nextNameless()))
}

// ArgumentAt declares (or selects) the positional argument at index
func (c *Command) ArgumentAt(index int) *OptionBuilder {
	return c.declare(types.Index(index))
}

// Register adds a finished Option and its aliases. Keys which are already declared yield
// errs.ErrDuplicateOption and nothing is registered.
func (c *Command) Register(option *Option) error {
	if option == nil {
		return errs.ErrInvalidOptionName.WithArgs("<nil>")
	}
	if c.options.Has(option.Key()) {
		return errs.ErrDuplicateOption.WithArgs(option.Key().String())
	}
	for _, alias := range option.Aliases() {
		if err := c.checkAlias(option, alias); err != nil {
			return err
		}
	}

	c.options.Set(option.Key(), option)
	for _, alias := range option.Aliases() {
		c.options.Set(types.Name(alias), option)
	}
	c.index = nil

	return nil
}

// Parse parses the tokens once. Subsequent calls return the stored status and error.
//
// The status is StatusOK on success (including when help was shown) and StatusError otherwise.
// When errors are trapped the message is written to stderr and the returned error is nil; Err returns
// it. Declaration errors are never trapped.
func (c *Command) Parse() (int, error) {
	if c.parsed {
		return c.status, c.parseErr
	}
	c.parsed = true

	if len(c.usageErrs) > 0 {
		c.err = c.usageErrs[0]
		c.status, c.parseErr = StatusError, c.err
		return c.status, c.parseErr
	}

	c.attachHelp()
	err := c.parse()
	c.index = c.buildIndex()
	if err != nil {
		c.status, c.parseErr = c.handleError(err)
		return c.status, c.parseErr
	}
	c.status = StatusOK

	return c.status, nil
}

// IsParsed is true once Parse has run
func (c *Command) IsParsed() bool {
	return c.parsed
}

// Err returns the error of the last parse, whether it was trapped or not, or the first declaration error
func (c *Command) Err() error {
	if c.err == nil && len(c.usageErrs) > 0 {
		return c.usageErrs[0]
	}

	return c.err
}

// UsageErrors returns every declaration error recorded so far
func (c *Command) UsageErrors() []error {
	return append([]error(nil), c.usageErrs...)
}

// Name returns the program name - the first token once parsed
func (c *Command) Name() string {
	if c.name == "" && len(c.tokens) > 0 {
		return c.tokens[0]
	}

	return c.name
}

// UseDefaultHelp toggles the automatic -h/--help option
func (c *Command) UseDefaultHelp(enabled bool) {
	c.defaultHelp = enabled
}

// TrapErrors when true (the default) parse errors are printed and turned into StatusError instead
// of being returned
func (c *Command) TrapErrors(trap bool) {
	c.errorTrap = trap
}

// BeepOnError toggles the terminal bell on parse errors
func (c *Command) BeepOnError(beep bool) {
	c.errorBeep = beep
}

// SetHelp sets the text displayed below the program name on the help screen
func (c *Command) SetHelp(text string) {
	c.helpText = text
}

// HelpText returns the text set with SetHelp
func (c *Command) HelpText() string {
	return c.helpText
}

// SetLanguage sets the language of error and help messages. Unknown languages fall back to the
// closest available one.
func (c *Command) SetLanguage(lang language.Tag) {
	c.lang = i18n.Default().Match(lang)
}

// Language returns the language of error and help messages
func (c *Command) Language() language.Tag {
	return c.lang
}

// SetRenderer replaces the Renderer used for help and error output
func (c *Command) SetRenderer(renderer Renderer) {
	c.renderer = renderer
}

// Renderer returns the Renderer used for help and error output
func (c *Command) Renderer() Renderer {
	return c.renderer
}

// SetStdout sets the writer used for help output and returns the previous one
func (c *Command) SetStdout(w io.Writer) io.Writer {
	current := c.stdout
	c.stdout = w
	return current
}

// Stdout returns the writer used for help output
func (c *Command) Stdout() io.Writer {
	return c.stdout
}

// SetStderr sets the writer used for error output and the bell and returns the previous one
func (c *Command) SetStderr(w io.Writer) io.Writer {
	current := c.stderr
	c.stderr = w
	return current
}

// Stderr returns the writer used for error output
func (c *Command) Stderr() io.Writer {
	return c.stderr
}

// Help returns the help screen
func (c *Command) Help() string {
	c.attachHelp()

	return c.renderer.CommandHelp()
}

// PrintHelp writes the help screen to stdout
func (c *Command) PrintHelp() {
	_, _ = fmt.Fprint(c.stdout, c.Help())
	c.showedHelp = true
}

// DidShowHelp is true once the help screen was printed
func (c *Command) DidShowHelp() bool {
	return c.showedHelp
}

// String returns the help screen
func (c *Command) String() string {
	return c.Help()
}

// Has is true when an option is declared under name. It does not trigger parsing.
func (c *Command) Has(name string) bool {
	return c.options.Has(types.ParseKey(name))
}

// GetOption returns the option declared under name (or an alias). It does not trigger parsing.
func (c *Command) GetOption(name string) (*Option, bool) {
	return c.options.Get(types.ParseKey(name))
}

// Size returns the number of distinct options, aliases not counted
func (c *Command) Size() int {
	return len(c.uniqueOptions())
}

// Options returns every option keyed by name, alias and index
func (c *Command) Options() map[types.Key]*Option {
	c.ensureParsed()

	out := make(map[types.Key]*Option, c.options.Count())
	for it := c.options.Front(); it != nil; it = it.Next() {
		out[*it.Key] = it.Value
	}

	return out
}

// Arguments returns the positional options keyed by index
func (c *Command) Arguments() map[types.Key]*Option {
	c.ensureParsed()

	return copyOptions(c.indexed().arguments)
}

// Flags returns the named options keyed by name and alias
func (c *Command) Flags() map[types.Key]*Option {
	c.ensureParsed()

	return copyOptions(c.indexed().flags)
}

// ArgumentValues returns the values of the positional options in index order. Unset values are skipped.
func (c *Command) ArgumentValues() []any {
	c.ensureParsed()

	var values []any
	for _, key := range c.indexed().keys {
		if !key.IsIndex() {
			continue
		}
		if v := c.indexed().arguments[key].Value(); v != nil {
			values = append(values, v)
		}
	}

	return values
}

// FlagValues returns the values of the named options keyed by their canonical name
func (c *Command) FlagValues() map[string]any {
	c.ensureParsed()

	values := make(map[string]any)
	for _, option := range c.uniqueOptions() {
		if option.IsNamed() {
			values[option.Name()] = option.Value()
		}
	}

	return values
}

// Keys returns every option key in natural order, indexes before names
func (c *Command) Keys() []types.Key {
	c.ensureParsed()

	return append([]types.Key(nil), c.indexed().keys...)
}

// Range calls fn for every key in natural order until fn returns false
func (c *Command) Range(fn RangeFunc) {
	for _, key := range c.Keys() {
		option, _ := c.options.Get(key)
		if !fn(key, option.Value()) {
			return
		}
	}
}

// Lookup returns the value of the option identified by key. The parse error is returned when parsing
// failed and errs.ErrUnknownOption when nothing is declared under key.
func (c *Command) Lookup(key types.Key) (any, error) {
	c.ensureParsed()
	if c.err != nil {
		return nil, c.err
	}

	option, found := c.options.Get(key)
	if !found {
		return nil, errs.ErrUnknownOption.WithArgs(key.Flag())
	}

	return option.Value(), nil
}

// Get returns the value of the option declared under name or nil
func (c *Command) Get(name string) any {
	c.ensureParsed()

	if option, found := c.options.Get(types.ParseKey(name)); found {
		return option.Value()
	}

	return nil
}

// Arg returns the value of the positional argument at index or nil
func (c *Command) Arg(index int) any {
	c.ensureParsed()

	if option, found := c.options.Get(types.Index(index)); found {
		return option.Value()
	}

	return nil
}

// Set always fails: values are only assigned by parsing. Use the Option itself to change a value.
func (c *Command) Set(name string, value any) error {
	return errs.ErrIndexWrite.WithArgs(name, value)
}

// Unset clears the value of the option declared under name. Boolean options fall back to their default.
func (c *Command) Unset(name string) {
	c.ensureParsed()

	if option, found := c.options.Get(types.ParseKey(name)); found {
		option.Reset()
	}
}

// GetString returns the value of name as a string
func (c *Command) GetString(name string) (string, error) {
	value, err := c.valueOf(name)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	}

	return "", errs.ErrUnsupportedTypeConversion.WithArgs(name, "string")
}

// GetBool returns the value of name as a bool. Strings such as "true" or "0" are converted.
func (c *Command) GetBool(name string) (bool, error) {
	value, err := c.valueOf(name)
	if err != nil {
		return false, err
	}
	if b, ok := util.ToBool(value); ok {
		return b, nil
	}

	return false, errs.ErrUnsupportedTypeConversion.WithArgs(name, "bool")
}

// GetInt returns the value of name as an int. Decimal strings are converted.
func (c *Command) GetInt(name string) (int, error) {
	value, err := c.valueOf(name)
	if err != nil {
		return 0, err
	}
	if i, ok := util.ToInt(value); ok {
		return i, nil
	}

	return 0, errs.ErrUnsupportedTypeConversion.WithArgs(name, "int")
}

// GetFiles returns the resolved path(s) of a file option
func (c *Command) GetFiles(name string) ([]string, error) {
	value, err := c.valueOf(name)
	if err != nil {
		return nil, err
	}

	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return append([]string(nil), v...), nil
	}

	return nil, errs.ErrUnsupportedTypeConversion.WithArgs(name, "[]string")
}

// GetTime returns the value of name as a time.Time - see MapToTime
func (c *Command) GetTime(name string) (time.Time, error) {
	value, err := c.valueOf(name)
	if err != nil {
		return time.Time{}, err
	}
	if t, ok := value.(time.Time); ok {
		return t, nil
	}

	return time.Time{}, errs.ErrUnsupportedTypeConversion.WithArgs(name, "time.Time")
}

func (c *Command) valueOf(name string) (any, error) {
	value, err := c.Lookup(types.ParseKey(name))
	if err != nil {
		if errors.Is(err, errs.ErrUnknownOption) {
			return nil, errs.ErrOptionNotSet.WithArgs(name)
		}
		return nil, err
	}
	if value == nil {
		return nil, errs.ErrOptionNotSet.WithArgs(name)
	}

	return value, nil
}
