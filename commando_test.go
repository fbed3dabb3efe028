package commando

import (
	"errors"
	"strings"
	"testing"

	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"
)

type arrayWriter struct {
	data *[]string
}

func newArrayWriter() *arrayWriter {
	return &arrayWriter{data: &[]string{}}
}

func (writer arrayWriter) Write(p []byte) (int, error) {
	*writer.data = append(*writer.data, string(p))

	return len(p), nil
}

func (writer arrayWriter) String() string {
	return strings.Join(*writer.data, "")
}

// newTestCommand returns a Command which returns errors instead of printing them
func newTestCommand(tokens ...string) (*Command, *arrayWriter, *arrayWriter) {
	cmd := New(append([]string{"prog"}, tokens...))
	cmd.TrapErrors(false)
	cmd.BeepOnError(false)
	stdout, stderr := newArrayWriter(), newArrayWriter()
	cmd.SetStdout(stdout)
	cmd.SetStderr(stderr)

	return cmd, stdout, stderr
}

func TestCommand_ShortOption(t *testing.T) {
	cmd, _, _ := newTestCommand("-f", "val")
	cmd.Option("f")

	status, err := cmd.Parse()
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "val", cmd.Get("f"))
	assert.Equal(t, "prog", cmd.Name())
}

func TestCommand_Alias(t *testing.T) {
	cmd, _, _ := newTestCommand("--foo", "val")
	cmd.Option("f").Alias("foo")

	assert.Equal(t, "val", cmd.Get("f"))
	assert.Equal(t, "val", cmd.Get("foo"))

	f, _ := cmd.GetOption("f")
	foo, _ := cmd.GetOption("foo")
	assert.Same(t, f, foo, "an alias must resolve to the same option")
}

func TestCommand_Increment(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		max    int
		want   int
	}{
		{"grouped", []string{"-vvvv"}, 0, 4},
		{"grouped capped", []string{"-vvvv"}, 3, 3},
		{"separate", []string{"-v", "-vv"}, 0, 3},
		{"through alias", []string{"--verbose", "-v", "--verbose"}, 0, 3},
		{"absent", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand(tt.tokens...)
			cmd.Flag("v").Alias("verbose").Increment(tt.max)

			_, err := cmd.Parse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Get("v"))
		})
	}
}

func TestCommand_IncrementInvariant(t *testing.T) {
	for _, max := range []int{0, 1, 3} {
		for n := 1; n <= 6; n++ {
			cmd, _, _ := newTestCommand("-" + strings.Repeat("v", n))
			cmd.Flag("v").Increment(max)

			want := n
			if max > 0 && n > max {
				want = max
			}
			assert.Equal(t, want, cmd.Get("v"), "max=%d n=%d", max, n)
		}
	}
}

func TestCommand_Boolean(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		defaultVal *bool
		want       bool
	}{
		{"absent", nil, nil, false},
		{"present", []string{"-b"}, nil, true},
		{"default true absent", nil, boolPtr(true), true},
		{"default true present", []string{"-b"}, boolPtr(true), false},
		{"long alias", []string{"--bool"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand(tt.tokens...)
			b := cmd.Flag("b").Alias("bool")
			if tt.defaultVal != nil {
				b.Default(*tt.defaultVal)
			}
			b.Boolean()

			_, err := cmd.Parse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Get("b"))
		})
	}
}

func TestCommand_ShortGroup(t *testing.T) {
	cmd, _, _ := newTestCommand("-abv", "-v", "rest")
	cmd.Flag("a").Boolean()
	cmd.Flag("b").Boolean()
	cmd.Flag("c").Boolean()
	cmd.Flag("v").Increment(0)

	_, err := cmd.Parse()
	require.NoError(t, err)
	assert.Equal(t, true, cmd.Get("a"))
	assert.Equal(t, true, cmd.Get("b"))
	assert.Equal(t, false, cmd.Get("c"))
	assert.Equal(t, 2, cmd.Get("v"))
	assert.Equal(t, "rest", cmd.Arg(0))
}

func TestCommand_ShortGroupWithDigit(t *testing.T) {
	cmd, _, _ := newTestCommand("-v1")
	cmd.Flag("v").Increment(0)

	status, err := cmd.Parse()
	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, err, errs.ErrSyntax)
}

func TestCommand_ImplicitPositionals(t *testing.T) {
	cmd, _, _ := newTestCommand("arg1", "arg2", "arg3")

	assert.Equal(t, []any{"arg1", "arg2", "arg3"}, cmd.ArgumentValues())
	for i, want := range []string{"arg1", "arg2", "arg3"} {
		assert.Equal(t, want, cmd.Arg(i))
		assert.Equal(t, want, cmd.Get(types.Index(i).String()))
	}
	assert.Nil(t, cmd.Arg(3))
	assert.Len(t, cmd.Arguments(), 3)
}

func TestCommand_DeclaredPositionals(t *testing.T) {
	cmd, _, _ := newTestCommand("x", "-f", "v", "y")
	first := cmd.Argument().Title("first").Option()
	cmd.Argument().Title("second")
	cmd.ArgumentAt(2).Title("third")
	cmd.Option("f")

	_, err := cmd.Parse()
	require.NoError(t, err)
	assert.Equal(t, "x", first.Value())
	assert.Equal(t, "first", first.Name())
	assert.Equal(t, "y", cmd.Arg(1))
	assert.Nil(t, cmd.Arg(2))
	assert.Equal(t, []any{"x", "y"}, cmd.ArgumentValues(), "unset positionals are skipped")
}

func TestCommand_SyntaxError(t *testing.T) {
	cmd, _, _ := newTestCommand("-*test")

	status, err := cmd.Parse()
	assert.Equal(t, StatusError, status)
	assert.ErrorIs(t, err, errs.ErrSyntax)
	assert.True(t, cmd.IsParsed())
}

func TestCommand_Help(t *testing.T) {
	for _, token := range []string{"--help", "-h"} {
		t.Run(token, func(t *testing.T) {
			cmd, stdout, _ := newTestCommand(token, "--unknown")
			cmd.SetHelp("A test program.")
			cmd.Option("f").Alias("foo").Describe("The f option").Require()

			status, err := cmd.Parse()
			require.NoError(t, err)
			assert.Equal(t, StatusOK, status)
			assert.True(t, cmd.DidShowHelp())

			out := stdout.String()
			assert.Contains(t, out, " prog")
			assert.Contains(t, out, "A test program.")
			assert.Contains(t, out, "-f/--foo <argument>")
			assert.Contains(t, out, "     Required. The f option")
			assert.Contains(t, out, "-h/--help")
			assert.Contains(t, out, "Show the help page for this command.")
		})
	}
}

func TestCommand_HelpDisabled(t *testing.T) {
	cmd, stdout, _ := newTestCommand("--help")
	cmd.UseDefaultHelp(false)

	_, err := cmd.Parse()
	assert.ErrorIs(t, err, errs.ErrUnknownOption)
	assert.False(t, cmd.DidShowHelp())
	assert.Empty(t, stdout.String())
	assert.False(t, cmd.Has("h"))
}

func TestCommand_HelpNotRegisteredTwice(t *testing.T) {
	cmd, _, _ := newTestCommand()
	cmd.Flag("help").Describe("custom help").Boolean()

	_, err := cmd.Parse()
	require.NoError(t, err)
	assert.False(t, cmd.Has("h"))
	help, _ := cmd.GetOption("help")
	assert.Equal(t, "custom help", help.Description())
}

func TestCommand_UnknownOption(t *testing.T) {
	cmd, _, _ := newTestCommand("--nope")

	_, err := cmd.Parse()
	assert.ErrorIs(t, err, errs.ErrUnknownOption)
	assert.Equal(t, "Unknown option, --nope, specified", err.Error())
}

func TestCommand_ExpectedArgument(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"missing value", []string{"-f"}},
		{"flag instead of value", []string{"-f", "-g"}},
		{"long flag instead of value", []string{"-f", "--gee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCommand(tt.tokens...)
			cmd.Option("f")
			cmd.Flag("g").Alias("gee").Boolean()

			_, err := cmd.Parse()
			assert.ErrorIs(t, err, errs.ErrExpectedArgument)
			assert.Equal(t, "Unable to parse option -f: Expected an argument", err.Error())
		})
	}
}

func TestCommand_Required(t *testing.T) {
	t.Run("missing option", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("f").Require()

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrRequiredMissing)
		assert.ErrorIs(t, err, errs.ErrRequiredOption)
		assert.Equal(t, "Required option -f must be specified", err.Error())
	})

	t.Run("missing argument", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Argument().Title("name").Require()

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrRequiredArgument)
		assert.Equal(t, "Required argument name must be specified", err.Error())
	})

	t.Run("falsy but present", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-f", "", "0")
		cmd.Option("f").Require()
		cmd.Argument().Require()

		_, err := cmd.Parse()
		require.NoError(t, err)
		assert.Equal(t, "", cmd.Get("f"))
		assert.Equal(t, "0", cmd.Arg(0))
	})

	t.Run("satisfied by default", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("f").Default("x").Require()

		_, err := cmd.Parse()
		require.NoError(t, err)
	})

	t.Run("aliased option reported once", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("f").Alias("foo", "fo").Require()

		_, err := cmd.Parse()
		assert.Equal(t, "Required option -f must be specified", err.Error())
	})
}

func TestCommand_Needs(t *testing.T) {
	t.Run("unmet", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1")
		cmd.Option("b")
		cmd.Option("a").Needs("b")

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrUnmetDependency)
		assert.False(t, errors.Is(err, errs.ErrRequiredMissing))
		assert.Equal(t, `Option "a" does not have required option(s): b`, err.Error())
	})

	t.Run("met", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1", "-b", "v2")
		cmd.Option("b")
		cmd.Option("a").Needs("b")

		assert.Equal(t, "v1", cmd.Get("a"))
		assert.NoError(t, cmd.Err())
	})

	t.Run("unmet names in declaration order", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1", "-b", "v2")
		cmd.Option("b")
		cmd.Option("c")
		cmd.Option("a").Needs("d", "c").Needs("b", "e")

		_, err := cmd.Parse()
		assert.Equal(t, `Option "a" does not have required option(s): d, c, e`, err.Error())
	})

	t.Run("positional need", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1", "pos")
		cmd.Option("a").Needs("0")

		_, err := cmd.Parse()
		require.NoError(t, err)
	})

	t.Run("need met through alias", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1", "--bee", "v2")
		cmd.Option("b").Alias("bee")
		cmd.Option("a").Needs("bee")

		_, err := cmd.Parse()
		require.NoError(t, err)
	})

	t.Run("absent option is checked", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("b")
		cmd.Option("a").Needs("b")

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrUnmetDependency)
	})

	t.Run("option with default is checked", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("b")
		cmd.Option("a").Default("x").Needs("b")

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrUnmetDependency)
		assert.Equal(t, "x", cmd.Get("a"))
	})

	t.Run("indexes sort before names", func(t *testing.T) {
		cmd, _, _ := newTestCommand("x", "y", "-f", "v")
		cmd.Option("f")
		cmd.Option("a10")
		cmd.Option("a2")

		_, err := cmd.Parse()
		require.NoError(t, err)
		assert.Equal(t, []types.Key{
			types.Index(0), types.Index(1), types.Name("a2"), types.Name("a10"), types.Name("f"),
			types.Name("h"), types.Name("help"),
		}, cmd.Keys())
	})

	// falsy values count as unset: a legitimate "0" or "" does not satisfy a need
	t.Run("falsy values are unmet", func(t *testing.T) {
		for _, value := range []string{"0", ""} {
			cmd, _, _ := newTestCommand("-a", "v1", "-b", value)
			cmd.Option("b")
			cmd.Option("a").Needs("b")

			_, err := cmd.Parse()
			assert.ErrorIs(t, err, errs.ErrUnmetDependency, "value %q", value)
		}
	})

	t.Run("false boolean is unmet", func(t *testing.T) {
		cmd, _, _ := newTestCommand("-a", "v1")
		cmd.Flag("b").Boolean()
		cmd.Option("a").Needs("b")

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrUnmetDependency)
	})
}

func TestCommand_IdempotentParse(t *testing.T) {
	calls := 0
	cmd, stdout, _ := newTestCommand("-f", "val", "x")
	cmd.Option("f").Map(func(v any) any {
		calls++
		return strings.ToUpper(v.(string))
	})

	status1, err1 := cmd.Parse()
	keys := cmd.Keys()
	status2, err2 := cmd.Parse()

	assert.Equal(t, status1, status2)
	assert.Equal(t, err1, err2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "VAL", cmd.Get("f"))
	assert.Equal(t, keys, cmd.Keys())
	assert.Empty(t, stdout.String())

	t.Run("failed parse", func(t *testing.T) {
		cmd, _, _ := newTestCommand("--nope")
		_, err1 := cmd.Parse()
		status, err2 := cmd.Parse()
		assert.Equal(t, StatusError, status)
		assert.Same(t, err1, err2)
	})
}

func TestCommand_LazyParse(t *testing.T) {
	cmd, _, _ := newTestCommand("-f", "val")
	cmd.Option("f")

	assert.False(t, cmd.IsParsed())
	assert.True(t, cmd.Has("f"), "Has must not trigger parsing")
	assert.False(t, cmd.IsParsed())

	assert.Equal(t, "val", cmd.Get("f"))
	assert.True(t, cmd.IsParsed())
}

func TestCommand_TrapErrors(t *testing.T) {
	cmd := New([]string{"prog", "--nope"})
	stdout, stderr := newArrayWriter(), newArrayWriter()
	cmd.SetStdout(stdout)
	cmd.SetStderr(stderr)

	status, err := cmd.Parse()
	assert.Equal(t, StatusError, status)
	assert.NoError(t, err)
	assert.ErrorIs(t, cmd.Err(), errs.ErrUnknownOption)

	out := stderr.String()
	assert.True(t, strings.HasPrefix(out, "\a"), "expected a beep")
	assert.Contains(t, out, "ERROR: Unknown option, --nope, specified")
	assert.Empty(t, stdout.String())

	t.Run("without beep", func(t *testing.T) {
		cmd := New([]string{"prog", "--nope"})
		stderr := newArrayWriter()
		cmd.SetStderr(stderr)
		cmd.BeepOnError(false)

		_, _ = cmd.Parse()
		assert.False(t, strings.Contains(stderr.String(), "\a"))
	})

	t.Run("localised", func(t *testing.T) {
		cmd := New([]string{"prog", "--nope"})
		stderr := newArrayWriter()
		cmd.SetStderr(stderr)
		cmd.BeepOnError(false)
		cmd.SetLanguage(language.German)

		_, _ = cmd.Parse()
		assert.Contains(t, stderr.String(), "FEHLER: Unbekannte Option --nope angegeben")
	})
}

func TestCommand_UsageErrors(t *testing.T) {
	t.Run("numeric flag", func(t *testing.T) {
		cmd := New([]string{"prog"})
		stderr := newArrayWriter()
		cmd.SetStderr(stderr)

		b := cmd.Flag("1").Describe("ignored")
		assert.ErrorIs(t, b.Err(), errs.ErrNumericFlag)
		assert.Nil(t, b.Option())

		status, err := cmd.Parse()
		assert.Equal(t, StatusError, status)
		assert.ErrorIs(t, err, errs.ErrNumericFlag)
		assert.ErrorIs(t, err, errs.ErrUsage)
		assert.Empty(t, stderr.String(), "usage errors are never trapped")
	})

	t.Run("invalid default", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		b := cmd.Option("f").Must(OneOf("a", "b")).Default("c")
		assert.ErrorIs(t, b.Err(), errs.ErrInvalidValue)
		assert.Nil(t, b.Option().Default(), "an invalid default is not recorded")

		_, err := cmd.Parse()
		assert.ErrorIs(t, err, errs.ErrInvalidValue)
	})

	t.Run("alias conflict", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		cmd.Option("a")
		b := cmd.Option("b").Alias("a")
		assert.ErrorIs(t, b.Err(), errs.ErrDuplicateOption)
		assert.Len(t, cmd.UsageErrors(), 1)
	})

	t.Run("invalid name", func(t *testing.T) {
		cmd, _, _ := newTestCommand()
		b := cmd.ArgumentAt(-1)
		assert.ErrorIs(t, b.Err(), errs.ErrInvalidOptionName)
	})
}

func TestCommand_SetAndUnset(t *testing.T) {
	cmd, _, _ := newTestCommand("-f", "val", "-b")
	cmd.Option("f")
	cmd.Flag("b").Boolean()

	err := cmd.Set("f", "other")
	assert.ErrorIs(t, err, errs.ErrIndexWrite)
	assert.Equal(t, "val", cmd.Get("f"))

	cmd.Unset("f")
	assert.Nil(t, cmd.Get("f"))

	assert.Equal(t, true, cmd.Get("b"))
	cmd.Unset("b")
	assert.Equal(t, false, cmd.Get("b"), "booleans fall back to their default")

	assert.Nil(t, cmd.Get("undeclared"))
}

func TestCommand_ReselectOption(t *testing.T) {
	cmd, _, _ := newTestCommand()
	first := cmd.Option("f").Describe("first").Option()
	second := cmd.Option("f").Option()

	assert.Same(t, first, second)
	assert.Equal(t, "first", second.Description())
	assert.Same(t, first, cmd.Flag("f").Option())
}

func TestCommand_NamelessOptions(t *testing.T) {
	cmd, _, _ := newTestCommand("a", "b", "c")
	cmd.ArgumentAt(0).Title("zero")
	one := cmd.Option("").Option()
	two := cmd.Argument().Option()

	assert.Equal(t, types.Index(1), one.Key())
	assert.Equal(t, types.Index(2), two.Key())
	assert.Equal(t, []any{"a", "b", "c"}, cmd.ArgumentValues())
}

func TestCommand_Accessors(t *testing.T) {
	cmd, _, _ := newTestCommand("-f", "val", "pos", "--b10", "x")
	cmd.Option("f").Alias("foo")
	cmd.Option("b10")
	cmd.Option("b2")
	cmd.Option("a")

	t.Run("keys in natural order", func(t *testing.T) {
		assert.Equal(t, []types.Key{
			types.Index(0), types.Name("a"), types.Name("b2"), types.Name("b10"), types.Name("f"),
			types.Name("foo"), types.Name("h"), types.Name("help"),
		}, cmd.Keys())
	})

	t.Run("partition", func(t *testing.T) {
		assert.Len(t, cmd.Options(), 8)
		assert.Len(t, cmd.Flags(), 7)
		assert.Len(t, cmd.Arguments(), 1)
		assert.Equal(t, 6, cmd.Size())
	})

	t.Run("flag values are de-duplicated", func(t *testing.T) {
		assert.Equal(t, map[string]any{
			"f":   "val",
			"b10": "x",
			"b2":  nil,
			"a":   nil,
			"h":   false,
		}, cmd.FlagValues())
	})

	t.Run("lookup", func(t *testing.T) {
		v, err := cmd.Lookup(types.Name("foo"))
		require.NoError(t, err)
		assert.Equal(t, "val", v)

		v, err = cmd.Lookup(types.Index(0))
		require.NoError(t, err)
		assert.Equal(t, "pos", v)

		_, err = cmd.Lookup(types.Name("zzz"))
		assert.ErrorIs(t, err, errs.ErrUnknownOption)
	})

	t.Run("range", func(t *testing.T) {
		var seen []string
		cmd.Range(func(key types.Key, value any) bool {
			seen = append(seen, key.String())
			return key.String() != "b10"
		})
		assert.Equal(t, []string{"0", "a", "b2", "b10"}, seen)
	})
}

func TestCommand_TypedGetters(t *testing.T) {
	cmd, _, _ := newTestCommand("-n", "42", "-s", "text", "-t", "2024-02-03", "-vv", "-b", "true")
	cmd.Option("n")
	cmd.Option("s")
	cmd.Option("t").Map(MapToTime)
	cmd.Flag("v").Increment(0)
	cmd.Option("b")
	cmd.Option("unset")

	n, err := cmd.GetInt("n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	v, err := cmd.GetInt("v")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	s, err := cmd.GetString("s")
	require.NoError(t, err)
	assert.Equal(t, "text", s)

	vs, err := cmd.GetString("v")
	require.NoError(t, err)
	assert.Equal(t, "2", vs)

	b, err := cmd.GetBool("b")
	require.NoError(t, err)
	assert.True(t, b)

	tm, err := cmd.GetTime("t")
	require.NoError(t, err)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, 3, tm.Day())

	_, err = cmd.GetInt("s")
	assert.ErrorIs(t, err, errs.ErrUnsupportedTypeConversion)

	_, err = cmd.GetString("unset")
	assert.ErrorIs(t, err, errs.ErrOptionNotSet)

	_, err = cmd.GetString("undeclared")
	assert.ErrorIs(t, err, errs.ErrOptionNotSet)

	_, err = cmd.GetFiles("s")
	require.NoError(t, err)
}

func TestCommand_RuleRejectsValue(t *testing.T) {
	cmd, _, _ := newTestCommand("-t", "Sir")
	cmd.Option("t").Must(OneOf("Mr", "Ms"))

	_, err := cmd.Parse()
	assert.ErrorIs(t, err, errs.ErrInvalidValue)
	assert.Equal(t, "Invalid value, Sir, for option t", err.Error())
	assert.Nil(t, cmd.Get("t"), "nothing is stored when validation fails")
}

func TestCommand_RuleAndMapOnPositional(t *testing.T) {
	cmd, _, _ := newTestCommand("test")
	cmd.Option("").Title("abc").
		Must(OneOf("test")).
		Map(func(v any) any {
			if v == "test" {
				v = "tset"
			}
			return "-" + v.(string) + "-"
		})

	assert.Equal(t, "-tset-", cmd.Arg(0))
}

func TestNewFromString(t *testing.T) {
	cmd, err := NewFromString(`prog -f "a value" 'second arg'`)
	require.NoError(t, err)
	cmd.Option("f")

	assert.Equal(t, "a value", cmd.Get("f"))
	assert.Equal(t, "second arg", cmd.Arg(0))

	_, err = NewFromString(`prog "unterminated`)
	assert.Error(t, err)
}

func TestNewWith(t *testing.T) {
	stdout := newArrayWriter()
	cmd, err := NewWith(
		WithTokens([]string{"prog", "--foo", "val", "-vv", "input"}),
		WithErrorTrap(false),
		WithBeep(false),
		WithStdout(stdout),
		WithStderr(newArrayWriter()),
		WithHelpText("help text"),
		WithOption("f", WithAlias("foo"), WithDescription("f"), SetRequired(true)),
		WithOption("v", WithIncrement(3)),
		WithArgument(0, WithTitle("input")),
	)
	require.NoError(t, err)

	status, err := cmd.Parse()
	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, "val", cmd.Get("foo"))
	assert.Equal(t, 2, cmd.Get("v"))
	assert.Equal(t, "input", cmd.Arg(0))
	assert.Equal(t, "help text", cmd.HelpText())

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewWith(
			WithOption("f"),
			WithOption("g", WithAlias("f")))
		assert.ErrorIs(t, err, errs.ErrConfiguringCommand)
		assert.ErrorIs(t, err, errs.ErrDuplicateOption)
	})

	t.Run("invalid default", func(t *testing.T) {
		_, err := NewWith(WithOption("b", SetBoolean(true), WithDefault("yes")))
		assert.ErrorIs(t, err, errs.ErrBooleanExpected)
	})

	t.Run("token string", func(t *testing.T) {
		cmd, err := NewWith(WithTokenString(`prog -x "y z"`), WithOption("x"))
		require.NoError(t, err)
		assert.Equal(t, "y z", cmd.Get("x"))
	})

	t.Run("language", func(t *testing.T) {
		cmd, err := NewWith(WithLanguage(language.MustParse("de-AT")))
		require.NoError(t, err)
		assert.Equal(t, language.German, cmd.Language())
	})
}

func TestCommand_SetTokensFallsBackToProcessArgs(t *testing.T) {
	cmd := New(nil)
	assert.NotEmpty(t, cmd.Tokens())
}

func boolPtr(b bool) *bool {
	return &b
}
