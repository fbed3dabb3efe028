package commando

import (
	"errors"
	"fmt"
	"strings"

	"github.com/facette/natsort"
	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/i18n"
	"github.com/napalu/commando/internal/messages"
	"github.com/napalu/commando/internal/parse"
	"github.com/napalu/commando/internal/util"
	"github.com/napalu/commando/types"
	"github.com/napalu/commando/types/orderedmap"
	"github.com/napalu/commando/types/queue"
)

// optionIndex is the post-parse view of the declared options
type optionIndex struct {
	keys      []types.Key
	arguments map[types.Key]*Option
	flags     map[types.Key]*Option
}

func (c *Command) parse() error {
	tokens := queue.From(c.tokens...)
	if name, ok := tokens.Pop(); ok {
		c.name = name
	}

	keyvals := orderedmap.NewOrderedMap[types.Key, any]()
	count := 0

	for !tokens.Empty() {
		raw, _ := tokens.Pop()
		token, err := parse.Classify(raw)
		if err != nil {
			return err
		}

		if token.IsValue() {
			key := types.Index(count)
			keyvals.Set(key, token.Value)
			if !c.options.Has(key) {
				option, _ := NewOption(key)
				c.options.Set(key, option)
			}
			count++
			continue
		}

		name, group := token.SplitGroup()
		for i := len(group) - 1; i >= 0; i-- {
			tokens.PushFront(group[i])
		}

		if c.defaultHelp && (name == HelpName || name == HelpShortName) {
			c.PrintHelp()
			return nil
		}

		option, found := c.options.Get(types.Name(name))
		if !found {
			return errs.ErrUnknownOption.WithArgs(types.Name(name).Flag())
		}

		// aliases share the canonical key so that repeated flags accumulate on one option
		key := option.Key()
		switch {
		case option.IsBoolean():
			keyvals.Set(key, !util.Truthy(option.Default()))
		case option.IsIncrement():
			previous, found := keyvals.Get(key)
			if !found {
				previous = option.Default()
			}
			n, _ := util.ToInt(previous)
			n++
			if option.Max() > 0 {
				n = util.Min(n, option.Max())
			}
			keyvals.Set(key, n)
		default:
			next, ok := tokens.Pop()
			if !ok {
				return errs.ErrExpectedArgument.WithArgs(types.Name(name).Flag())
			}
			value, err := parse.Classify(next)
			if err != nil {
				return err
			}
			if !value.IsValue() {
				return errs.ErrExpectedArgument.WithArgs(types.Name(name).Flag())
			}
			keyvals.Set(key, value.Value)
		}
	}

	for it := keyvals.Front(); it != nil; it = it.Next() {
		option, _ := c.options.Get(*it.Key)
		if err := option.SetValue(it.Value); err != nil {
			return err
		}
	}

	options := c.uniqueOptions()
	for _, option := range options {
		if option.IsRequired() && option.Value() == nil {
			if option.IsNamed() {
				return errs.ErrRequiredOption.WithArgs(option.Key().Flag())
			}
			return errs.ErrRequiredArgument.WithArgs(option.Name())
		}
	}

	for _, option := range options {
		if result := option.HasNeeds(c.lookup); !result.Satisfied() {
			return errs.ErrUnmetDependency.WithArgs(option.Name(), strings.Join(result.Unmet(), ", "))
		}
	}

	return nil
}

// handleError is the single error boundary of Parse
func (c *Command) handleError(err error) (int, error) {
	c.err = err
	if c.errorBeep {
		util.Beep(c.stderr)
	}
	if !c.errorTrap || errors.Is(err, errs.ErrUsage) {
		return StatusError, err
	}

	_, _ = fmt.Fprintln(c.stderr, c.renderer.TerminalError(err))

	return StatusError, nil
}

func (c *Command) ensureParsed() {
	if !c.parsed {
		_, _ = c.Parse()
	}
}

// attachHelp registers -h/--help unless disabled or either name is already taken
func (c *Command) attachHelp() {
	if !c.defaultHelp || c.options.Has(types.Name(HelpShortName)) || c.options.Has(types.Name(HelpName)) {
		return
	}

	option, _ := NewOption(types.Name(HelpShortName),
		SetBoolean(true),
		WithAlias(HelpName),
		WithDescription(i18n.Default().TL(c.lang, messages.MsgHelpDescriptionKey)))
	_ = c.Register(option)
}

func (c *Command) declare(key types.Key) *OptionBuilder {
	if option, found := c.options.Get(key); found {
		return newOptionBuilder(c, option)
	}

	option, err := NewOption(key)
	if err != nil {
		return c.failed(err)
	}
	c.options.Set(key, option)
	c.index = nil

	return newOptionBuilder(c, option)
}

// failed records a declaration error. The returned builder ignores every call.
func (c *Command) failed(err error) *OptionBuilder {
	c.usageErrs = append(c.usageErrs, err)

	return &OptionBuilder{cmd: c, err: err}
}

func (c *Command) nextNameless() int {
	for c.options.Has(types.Index(c.nameless)) {
		c.nameless++
	}
	index := c.nameless
	c.nameless++

	return index
}

// alias makes name resolve to option
func (c *Command) alias(option *Option, name string) error {
	if err := c.checkAlias(option, name); err != nil {
		return err
	}

	c.options.Set(types.Name(name), option)
	option.AddAlias(name)
	c.index = nil

	return nil
}

func (c *Command) checkAlias(option *Option, name string) error {
	key := types.ParseKey(name)
	if !key.IsValid() {
		return errs.ErrInvalidOptionName.WithArgs(name)
	}
	if key.IsIndex() {
		return errs.ErrNumericFlag.WithArgs(name)
	}
	if existing, found := c.options.Get(key); found && existing != option {
		return errs.ErrDuplicateOption.WithArgs(name)
	}

	return nil
}

func (c *Command) lookup(name string) (*Option, bool) {
	return c.options.Get(types.ParseKey(name))
}

// uniqueOptions returns every option once, in declaration order
func (c *Command) uniqueOptions() []*Option {
	seen := make(map[*Option]bool, c.options.Count())
	options := make([]*Option, 0, c.options.Count())
	for it := c.options.Front(); it != nil; it = it.Next() {
		if seen[it.Value] {
			continue
		}
		seen[it.Value] = true
		options = append(options, it.Value)
	}

	return options
}

// sortedOptions returns every option once, in natural key order
func (c *Command) sortedOptions() []*Option {
	seen := make(map[*Option]bool, c.options.Count())
	options := make([]*Option, 0, c.options.Count())
	for _, key := range c.naturalKeys() {
		option, _ := c.options.Get(key)
		if seen[option] {
			continue
		}
		seen[option] = true
		options = append(options, option)
	}

	return options
}

func (c *Command) indexed() *optionIndex {
	if c.index == nil {
		c.index = c.buildIndex()
	}

	return c.index
}

func (c *Command) buildIndex() *optionIndex {
	idx := &optionIndex{
		keys:      c.naturalKeys(),
		arguments: make(map[types.Key]*Option),
		flags:     make(map[types.Key]*Option),
	}
	for it := c.options.Front(); it != nil; it = it.Next() {
		if it.Key.IsIndex() {
			idx.arguments[*it.Key] = it.Value
		} else {
			idx.flags[*it.Key] = it.Value
		}
	}

	return idx
}

// naturalKeys returns every key in natural order of its string form, so indexes come before names
func (c *Command) naturalKeys() []types.Key {
	names := make([]string, 0, c.options.Count())
	for _, key := range c.options.Keys() {
		names = append(names, key.String())
	}
	natsort.Sort(names)

	keys := make([]types.Key, 0, len(names))
	for _, name := range names {
		keys = append(keys, types.ParseKey(name))
	}

	return keys
}

func copyOptions(in map[types.Key]*Option) map[types.Key]*Option {
	out := make(map[types.Key]*Option, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
