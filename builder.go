package commando

// OptionBuilder configures the option returned by Command.Option, Command.Flag or Command.Argument.
//
// Every method returns the builder so that calls can be chained:
//
//	cmd.Option("f").Alias("foo").Describe("input file").File(true, false).Require()
//
// The first error raised by a call is kept (see Err) and recorded on the Command, where it makes
// Parse fail. Calls made after an error are ignored.
type OptionBuilder struct {
	cmd    *Command
	option *Option
	err    error
}

func newOptionBuilder(cmd *Command, option *Option) *OptionBuilder {
	return &OptionBuilder{cmd: cmd, option: option}
}

// Option returns the option being configured (nil when the declaration failed)
func (b *OptionBuilder) Option() *Option {
	return b.option
}

// Err returns the first error raised while configuring the option
func (b *OptionBuilder) Err() error {
	return b.err
}

// Command returns the Command the option belongs to
func (b *OptionBuilder) Command() *Command {
	return b.cmd
}

// Alias makes every name in aliases resolve to the option
func (b *OptionBuilder) Alias(aliases ...string) *OptionBuilder {
	return b.apply(func(o *Option) error {
		for _, alias := range aliases {
			if err := b.cmd.alias(o, alias); err != nil {
				return err
			}
		}
		return nil
	})
}

// Describe sets the help text
func (b *OptionBuilder) Describe(description string) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetDescription(description)
		return nil
	})
}

// Title sets the displayed name
func (b *OptionBuilder) Title(title string) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetTitle(title)
		return nil
	})
}

// Require marks the option as required
func (b *OptionBuilder) Require() *OptionBuilder {
	return b.Required(true)
}

// Required sets whether the option is required
func (b *OptionBuilder) Required(required bool) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetRequired(required)
		return nil
	})
}

// Boolean turns the option into a toggle taking no value
func (b *OptionBuilder) Boolean() *OptionBuilder {
	return b.SetBoolean(true)
}

// SetBoolean sets whether the option is a toggle taking no value
func (b *OptionBuilder) SetBoolean(boolean bool) *OptionBuilder {
	return b.apply(func(o *Option) error {
		return o.SetBoolean(boolean)
	})
}

// Increment turns the option into a counter capped at max (0 = uncapped)
func (b *OptionBuilder) Increment(max int) *OptionBuilder {
	return b.apply(func(o *Option) error {
		return o.SetIncrement(max)
	})
}

// File resolves values to absolute paths, or to the list of matching paths with allowGlobbing
func (b *OptionBuilder) File(requireExists, allowGlobbing bool) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetFileRequirements(requireExists, allowGlobbing)
		return nil
	})
}

// Needs declares options which must hold a value whenever this option is used
func (b *OptionBuilder) Needs(names ...string) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetNeeds(names...)
		return nil
	})
}

// Must sets the validation rule
func (b *OptionBuilder) Must(rule RuleFunc) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetRule(rule)
		return nil
	})
}

// Choices restricts values to choices, which shell completion offers as suggestions
func (b *OptionBuilder) Choices(choices ...string) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetChoices(choices...)
		return nil
	})
}

// Map sets the transformation applied to validated values
func (b *OptionBuilder) Map(mapper MapFunc) *OptionBuilder {
	return b.apply(func(o *Option) error {
		o.SetMap(mapper)
		return nil
	})
}

// Default sets the default value, which is validated immediately
func (b *OptionBuilder) Default(value any) *OptionBuilder {
	return b.apply(func(o *Option) error {
		return o.SetDefault(value)
	})
}

// Declare declares or selects another option on the same Command (see Command.Option)
func (b *OptionBuilder) Declare(name string) *OptionBuilder {
	return b.cmd.Option(name)
}

// Flag declares or selects another named option on the same Command
func (b *OptionBuilder) Flag(name string) *OptionBuilder {
	return b.cmd.Flag(name)
}

// Argument declares the next nameless positional argument on the same Command
func (b *OptionBuilder) Argument() *OptionBuilder {
	return b.cmd.Argument()
}

// ArgumentAt declares or selects a positional argument on the same Command
func (b *OptionBuilder) ArgumentAt(index int) *OptionBuilder {
	return b.cmd.ArgumentAt(index)
}

func (b *OptionBuilder) apply(fn func(o *Option) error) *OptionBuilder {
	if b.err != nil || b.option == nil {
		return b
	}
	if err := fn(b.option); err != nil {
		b.err = err
		b.cmd.usageErrs = append(b.cmd.usageErrs, err)
	}

	return b
}
