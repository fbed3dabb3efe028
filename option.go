package commando

import (
	"fmt"
	"path/filepath"

	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/internal/util"
	"github.com/napalu/commando/types"
)

// Option is a single declared parameter: a named flag (-f, --foo) or a positional argument.
// Its identity never changes once created; aliases registered on a Command resolve to the same *Option.
type Option struct {
	key           types.Key
	title         string
	aliases       []string
	description   string
	required      bool
	boolean       bool
	increment     bool
	max           int
	file          bool
	requireExists bool
	allowGlobbing bool
	needs         []string
	choices       []string
	rule          RuleFunc
	mapper        MapFunc
	defaultValue  any
	hasDefault    bool
	value         any
}

// NewOption creates an Option identified by key. An empty name or a negative index yields
// errs.ErrInvalidOptionName.
func NewOption(key types.Key, configs ...ConfigureOptionFunc) (*Option, error) {
	if !key.IsValid() {
		return nil, errs.ErrInvalidOptionName.WithArgs(key.String())
	}

	option := &Option{key: key}
	var err error
	for _, config := range configs {
		config(option, &err)
		if err != nil {
			return nil, err
		}
	}

	return option, nil
}

// Key returns the identity of the Option
func (o *Option) Key() types.Key {
	return o.key
}

// Type returns Short, Long or Argument
func (o *Option) Type() types.TokenType {
	return o.key.Type()
}

// IsNamed is true for short and long options
func (o *Option) IsNamed() bool {
	return o.key.Type().IsNamed()
}

// Name returns the title of positional options which have one and the key otherwise
func (o *Option) Name() string {
	if o.key.IsIndex() && o.title != "" {
		return o.title
	}

	return o.key.String()
}

// Title returns the human-facing name of the Option
func (o *Option) Title() string {
	return o.title
}

// SetTitle overrides the name displayed for the Option
func (o *Option) SetTitle(title string) {
	o.title = title
}

// Description returns the help text of the Option
func (o *Option) Description() string {
	return o.description
}

// SetDescription sets the help text of the Option
func (o *Option) SetDescription(description string) {
	o.description = description
}

// Aliases returns the alternate names of the Option in declaration order
func (o *Option) Aliases() []string {
	return append([]string(nil), o.aliases...)
}

// AddAlias records an alternate name. Use Command.Alias (or the builder) so that the alias also resolves.
func (o *Option) AddAlias(alias string) {
	o.aliases = append(o.aliases, alias)
}

// IsRequired is true when parsing fails unless the Option receives a value
func (o *Option) IsRequired() bool {
	return o.required
}

// SetRequired marks the Option as required
func (o *Option) SetRequired(required bool) {
	o.required = required
}

// IsBoolean is true for options which take no value and toggle their default when present
func (o *Option) IsBoolean() bool {
	return o.boolean
}

// SetBoolean turns the Option into a boolean toggle. A false default is set when none exists.
func (o *Option) SetBoolean(boolean bool) error {
	if boolean {
		if !o.hasDefault {
			o.boolean = true
			if err := o.SetDefault(false); err != nil {
				o.boolean = false
				return err
			}
			return nil
		}
		if _, ok := o.defaultValue.(bool); !ok {
			return errs.ErrBooleanExpected.WithArgs(o.key.Flag(), o.defaultValue)
		}
	}
	o.boolean = boolean

	return nil
}

// IsIncrement is true for options counting their occurrences (-vvv)
func (o *Option) IsIncrement() bool {
	return o.increment
}

// Max returns the increment cap (0 when uncapped)
func (o *Option) Max() int {
	return o.max
}

// SetIncrement turns the Option into a counter capped at max (0 = uncapped). A 0 default is set when
// none exists; an existing default is validated and clamped again.
func (o *Option) SetIncrement(max int) error {
	increment, previousMax := o.increment, o.max
	o.increment = true
	o.max = max

	var err error
	if !o.hasDefault {
		err = o.SetDefault(0)
	} else {
		err = o.SetDefault(o.defaultValue)
	}
	if err != nil {
		o.increment, o.max = increment, previousMax
	}

	return err
}

// IsFile is true when values are resolved to absolute file paths
func (o *Option) IsFile() bool {
	return o.file
}

// RequiresExistingFile is true when a path which resolves to nothing is rejected
func (o *Option) RequiresExistingFile() bool {
	return o.requireExists
}

// AllowsGlobbing is true when values are glob patterns resolving to a list of files
func (o *Option) AllowsGlobbing() bool {
	return o.allowGlobbing
}

// SetFileRequirements turns the Option into a file option
func (o *Option) SetFileRequirements(requireExists, allowGlobbing bool) {
	o.file = true
	o.requireExists = requireExists
	o.allowGlobbing = allowGlobbing
}

// Needs returns the names of the options which must hold a truthy value when this Option is present
func (o *Option) Needs() []string {
	return append([]string(nil), o.needs...)
}

// SetNeeds appends names to the list of needed options
func (o *Option) SetNeeds(names ...string) {
	o.needs = append(o.needs, names...)
}

// Choices returns the values accepted by SetChoices
func (o *Option) Choices() []string {
	return append([]string(nil), o.choices...)
}

// SetChoices restricts values to choices. It replaces the rule of the Option with OneOf(choices...)
// and records the choices for help and shell completion.
func (o *Option) SetChoices(choices ...string) {
	o.choices = append([]string(nil), choices...)
	o.rule = OneOf(choices...)
}

// SetRule sets the validation rule applied to raw values
func (o *Option) SetRule(rule RuleFunc) {
	o.rule = rule
}

// SetMap sets the transformation applied to validated values
func (o *Option) SetMap(mapper MapFunc) {
	o.mapper = mapper
}

// Validate runs the rule of the Option against value. Options without a rule accept everything.
func (o *Option) Validate(value any) bool {
	if o.rule == nil {
		return true
	}

	return o.rule(value)
}

// Map applies the map function of the Option to value
func (o *Option) Map(value any) any {
	if o.mapper == nil {
		return value
	}

	return o.mapper(value)
}

// Default returns the default value (nil when none was set)
func (o *Option) Default() any {
	return o.defaultValue
}

// HasDefault is true once a default has been recorded
func (o *Option) HasDefault() bool {
	return o.hasDefault
}

// SetDefault runs value through the value pipeline and records it as the default. An invalid
// default is returned as an error and not recorded.
func (o *Option) SetDefault(value any) error {
	if err := o.SetValue(value); err != nil {
		return err
	}
	o.defaultValue = value
	o.hasDefault = true

	return nil
}

// Value returns the current effective value
func (o *Option) Value() any {
	return o.value
}

// SetValue validates, resolves and maps raw before storing it. Nothing is stored on error.
func (o *Option) SetValue(raw any) error {
	value, err := o.resolve(raw)
	if err != nil {
		return err
	}
	o.value = value

	return nil
}

// Reset clears the value. Boolean options fall back to their default.
func (o *Option) Reset() {
	o.value = nil
	if o.boolean && o.hasDefault {
		_ = o.SetValue(o.defaultValue)
	}
}

// HasNeeds checks the needs of the Option against the options known to lookup. A need is unmet when
// lookup does not know the name or the option it resolves to holds a falsy value.
func (o *Option) HasNeeds(lookup LookupFunc) NeedsResult {
	var unmet []string
	for _, name := range o.needs {
		needed, found := lookup(name)
		if !found || !util.Truthy(needed.Value()) {
			unmet = append(unmet, name)
		}
	}

	return NeedsResult{unmet: unmet}
}

// String returns the name of the Option as typed on the command-line
func (o *Option) String() string {
	return o.key.Flag()
}

func (o *Option) resolve(raw any) (any, error) {
	if o.boolean {
		if _, ok := raw.(bool); !ok {
			return nil, errs.ErrBooleanExpected.WithArgs(o.Name(), raw)
		}
	}
	if !o.Validate(raw) {
		return nil, errs.ErrInvalidValue.WithArgs(raw, o.Name())
	}

	value := raw
	if o.increment {
		n, ok := raw.(int)
		if !ok {
			return nil, errs.ErrIntegerExpected.WithArgs(o.Name(), raw)
		}
		if o.max > 0 {
			n = util.Min(n, o.max)
		}
		value = n
	}

	if o.file {
		resolved, err := o.resolveFile(raw)
		if err != nil {
			return nil, err
		}
		value = resolved
	}

	return o.Map(value), nil
}

// resolveFile returns the absolute path of raw or, with globbing, the absolute paths of all matches
func (o *Option) resolveFile(raw any) (any, error) {
	path, ok := raw.(string)
	if !ok {
		return nil, errs.ErrFileResolution.WithArgs(fmt.Sprint(raw))
	}

	if o.allowGlobbing {
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, errs.ErrFileResolution.WithArgs(path).Wrap(err)
		}
		files := make([]string, 0, len(matches))
		for _, match := range matches {
			abs, err := absPath(match)
			if err != nil {
				return nil, errs.ErrFileResolution.WithArgs(match).Wrap(err)
			}
			files = append(files, abs)
		}
		if len(files) == 0 && o.requireExists {
			return nil, errs.ErrFileResolution.WithArgs(path)
		}

		return files, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errs.ErrFileResolution.WithArgs(path).Wrap(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if o.requireExists {
			return nil, errs.ErrFileResolution.WithArgs(path)
		}
		return abs, nil
	}

	return resolved, nil
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	return abs, nil
}
