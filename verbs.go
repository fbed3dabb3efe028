package commando

import (
	"github.com/iancoleman/strcase"
	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/types"
)

// Canonical declaration verbs understood by Chain
const (
	VerbOption    = "option"
	VerbFlag      = "flag"
	VerbArgument  = "argument"
	VerbBoolean   = "boolean"
	VerbRequire   = "require"
	VerbAlias     = "alias"
	VerbTitle     = "title"
	VerbDescribe  = "describe"
	VerbMap       = "map"
	VerbIncrement = "increment"
	VerbMust      = "must"
	VerbNeeds     = "needs"
	VerbFile      = "file"
	VerbDefault   = "default"
	VerbChoices   = "choices"
)

// verbs maps every accepted verb spelling to its canonical form
var verbs = map[string]string{
	"option": VerbOption,
	"o":      VerbOption,

	"flag":     VerbFlag,
	"argument": VerbArgument,

	"boolean": VerbBoolean,
	"bool":    VerbBoolean,
	"b":       VerbBoolean,

	"require":  VerbRequire,
	"required": VerbRequire,
	"r":        VerbRequire,

	"alias": VerbAlias,
	"aka":   VerbAlias,
	"a":     VerbAlias,

	"title":        VerbTitle,
	"referToAs":    VerbTitle,
	"referredToAs": VerbTitle,

	"describe":    VerbDescribe,
	"d":           VerbDescribe,
	"describeAs":  VerbDescribe,
	"description": VerbDescribe,
	"describedAs": VerbDescribe,

	"map":      VerbMap,
	"mapTo":    VerbMap,
	"cast":     VerbMap,
	"castWith": VerbMap,

	"increment":  VerbIncrement,
	"repeatable": VerbIncrement,
	"repeats":    VerbIncrement,
	"count":      VerbIncrement,

	"must":  VerbMust,
	"needs": VerbNeeds,

	"file":        VerbFile,
	"expectsFile": VerbFile,

	"default":    VerbDefault,
	"defaultsTo": VerbDefault,

	"choices": VerbChoices,
	"oneOf":   VerbChoices,
}

// CanonicalVerb resolves a verb synonym (o, aka, referToAs, refer-to-as, ...) to its canonical form
func CanonicalVerb(verb string) (string, bool) {
	if canonical, found := verbs[verb]; found {
		return canonical, true
	}
	canonical, found := verbs[strcase.ToLowerCamel(verb)]

	return canonical, found
}

// Chain applies declaration verbs given by name, e.g. when declarations come from a script or a
// configuration file:
//
//	cmd.Chain().
//		Call("o", "f").Call("aka", "foo").Call("d", "the input file").
//		Call("flag", "v").Call("repeatable", 3)
//
// Like OptionBuilder, the first error is kept and makes Command.Parse fail.
type Chain struct {
	cmd     *Command
	current *OptionBuilder
	err     error
}

// Chain starts a verb chain on the Command
func (c *Command) Chain() *Chain {
	return &Chain{cmd: c}
}

// Err returns the first error raised by the chain
func (ch *Chain) Err() error {
	return ch.err
}

// Current returns the builder of the option the chain acts on (nil before the first declaration)
func (ch *Chain) Current() *OptionBuilder {
	return ch.current
}

// Call applies verb to the current option. option, flag and argument select the option the following
// verbs act on.
func (ch *Chain) Call(verb string, args ...any) *Chain {
	if ch.err != nil {
		return ch
	}

	canonical, found := CanonicalVerb(verb)
	if !found {
		return ch.fail(errs.ErrUnknownVerb.WithArgs(verb))
	}

	switch canonical {
	case VerbOption:
		return ch.option(canonical, args)
	case VerbFlag:
		return ch.flag(canonical, args)
	case VerbArgument:
		return ch.argument(canonical, args)
	}

	if ch.current == nil {
		return ch.fail(errs.ErrInvalidChain.WithArgs(verb))
	}

	b := ch.current
	switch canonical {
	case VerbBoolean:
		v, ok := optionalBool(args, true)
		if !ok {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "bool"))
		}
		b.SetBoolean(v)
	case VerbRequire:
		v, ok := optionalBool(args, true)
		if !ok {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "bool"))
		}
		b.Required(v)
	case VerbAlias:
		names, ok := stringArgs(args)
		if !ok || len(names) == 0 {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
		}
		b.Alias(names...)
	case VerbTitle, VerbDescribe:
		s, ok := singleString(args)
		if !ok {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
		}
		if canonical == VerbTitle {
			b.Title(s)
		} else {
			b.Describe(s)
		}
	case VerbMap:
		fn, ok := mapArg(args)
		if !ok {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "MapFunc"))
		}
		b.Map(fn)
	case VerbMust:
		fn, ok := ruleArg(args)
		if !ok {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "RuleFunc"))
		}
		b.Must(fn)
	case VerbIncrement:
		max := 0
		if len(args) > 0 {
			i, ok := args[0].(int)
			if !ok || len(args) > 1 {
				return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "int"))
			}
			max = i
		}
		b.Increment(max)
	case VerbNeeds, VerbChoices:
		names, ok := stringArgs(args)
		if !ok || len(names) == 0 {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
		}
		if canonical == VerbNeeds {
			b.Needs(names...)
		} else {
			b.Choices(names...)
		}
	case VerbFile:
		requireExists, allowGlobbing := true, false
		if len(args) > 2 {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "bool"))
		}
		for i, arg := range args {
			v, ok := arg.(bool)
			if !ok {
				return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "bool"))
			}
			if i == 0 {
				requireExists = v
			} else {
				allowGlobbing = v
			}
		}
		b.File(requireExists, allowGlobbing)
	case VerbDefault:
		if len(args) != 1 {
			return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "value"))
		}
		b.Default(args[0])
	}

	if b.Err() != nil {
		ch.err = b.Err()
	}

	return ch
}

func (ch *Chain) option(verb string, args []any) *Chain {
	if len(args) == 0 {
		return ch.use(ch.cmd.Option(""))
	}
	switch v := args[0].(type) {
	case string:
		return ch.use(ch.cmd.Option(v))
	case int:
		return ch.use(ch.cmd.ArgumentAt(v))
	}

	return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
}

func (ch *Chain) flag(verb string, args []any) *Chain {
	if len(args) != 1 {
		return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
	}
	switch v := args[0].(type) {
	case string:
		return ch.use(ch.cmd.Flag(v))
	case int:
		return ch.fail(errs.ErrNumericFlag.WithArgs(types.Index(v).String()))
	}

	return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "string"))
}

func (ch *Chain) argument(verb string, args []any) *Chain {
	if len(args) == 0 {
		return ch.use(ch.cmd.Argument())
	}
	switch v := args[0].(type) {
	case int:
		return ch.use(ch.cmd.ArgumentAt(v))
	case string:
		key := types.ParseKey(v)
		if !key.IsIndex() || !key.IsValid() {
			return ch.fail(errs.ErrNamedArgument.WithArgs(v))
		}
		return ch.use(ch.cmd.ArgumentAt(key.Index()))
	}

	return ch.fail(errs.ErrInvalidVerbArgument.WithArgs(verb, "int"))
}

func (ch *Chain) use(b *OptionBuilder) *Chain {
	if b.Err() != nil {
		ch.err = b.Err()
		return ch
	}
	ch.current = b

	return ch
}

// fail records a declaration error on the chain and the Command
func (ch *Chain) fail(err error) *Chain {
	ch.err = err
	ch.cmd.usageErrs = append(ch.cmd.usageErrs, err)

	return ch
}

func optionalBool(args []any, fallback bool) (bool, bool) {
	switch len(args) {
	case 0:
		return fallback, true
	case 1:
		v, ok := args[0].(bool)
		return v, ok
	}

	return false, false
}

func singleString(args []any) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	s, ok := args[0].(string)

	return s, ok
}

// stringArgs accepts strings and string slices
func stringArgs(args []any) ([]string, bool) {
	var out []string
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			out = append(out, v)
		case []string:
			out = append(out, v...)
		default:
			return nil, false
		}
	}

	return out, true
}

func mapArg(args []any) (MapFunc, bool) {
	if len(args) != 1 {
		return nil, false
	}
	switch fn := args[0].(type) {
	case MapFunc:
		return fn, true
	case func(any) any:
		return fn, true
	}

	return nil, false
}

func ruleArg(args []any) (RuleFunc, bool) {
	if len(args) != 1 {
		return nil, false
	}
	switch fn := args[0].(type) {
	case RuleFunc:
		return fn, true
	case func(any) bool:
		return fn, true
	}

	return nil, false
}
