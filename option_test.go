package commando

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/commando/errs"
	"github.com/napalu/commando/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOption(t *testing.T) {
	tests := []struct {
		name    string
		key     types.Key
		wantErr error
		want    types.TokenType
	}{
		{"short", types.Name("f"), nil, types.Short},
		{"long", types.Name("foo"), nil, types.Long},
		{"positional", types.Index(2), nil, types.Argument},
		{"empty name", types.Name(""), errs.ErrInvalidOptionName, 0},
		{"negative index", types.Index(-1), errs.ErrInvalidOptionName, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option, err := NewOption(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, option)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, option.Type())
			assert.Equal(t, tt.key, option.Key())
		})
	}
}

func TestOption_Name(t *testing.T) {
	positional, _ := NewOption(types.Index(0))
	assert.Equal(t, "0", positional.Name())
	positional.SetTitle("input")
	assert.Equal(t, "input", positional.Name())

	named, _ := NewOption(types.Name("foo"), WithTitle("The foo"))
	assert.Equal(t, "foo", named.Name())
	assert.Equal(t, "--foo", named.String())
}

func TestOption_ValuePipeline(t *testing.T) {
	option, err := NewOption(types.Name("n"),
		WithRule(IsInteger),
		WithMap(MapToInt))
	require.NoError(t, err)

	require.NoError(t, option.SetValue("42"))
	assert.Equal(t, 42, option.Value())

	err = option.SetValue("forty-two")
	assert.ErrorIs(t, err, errs.ErrInvalidValue)
	assert.Equal(t, 42, option.Value(), "a rejected value leaves the previous one in place")
}

func TestOption_Boolean(t *testing.T) {
	t.Run("false default", func(t *testing.T) {
		option, err := NewOption(types.Name("b"), SetBoolean(true))
		require.NoError(t, err)
		assert.True(t, option.IsBoolean())
		assert.Equal(t, false, option.Default())
		assert.Equal(t, false, option.Value())
	})

	t.Run("existing bool default", func(t *testing.T) {
		option, err := NewOption(types.Name("b"), WithDefault(true), SetBoolean(true))
		require.NoError(t, err)
		assert.Equal(t, true, option.Default())
	})

	t.Run("existing non-bool default", func(t *testing.T) {
		_, err := NewOption(types.Name("b"), WithDefault("yes"), SetBoolean(true))
		assert.ErrorIs(t, err, errs.ErrBooleanExpected)
		assert.ErrorIs(t, err, errs.ErrInvalidValue)
	})

	t.Run("non-bool value", func(t *testing.T) {
		option, _ := NewOption(types.Name("b"), SetBoolean(true))
		assert.ErrorIs(t, option.SetValue("true"), errs.ErrBooleanExpected)
	})

	t.Run("reset restores default", func(t *testing.T) {
		option, _ := NewOption(types.Name("b"), WithDefault(true), SetBoolean(true))
		require.NoError(t, option.SetValue(false))
		option.Reset()
		assert.Equal(t, true, option.Value())
	})

	t.Run("turned off", func(t *testing.T) {
		option, _ := NewOption(types.Name("b"), SetBoolean(true), SetBoolean(false))
		assert.False(t, option.IsBoolean())
	})
}

func TestOption_Increment(t *testing.T) {
	option, err := NewOption(types.Name("v"), WithIncrement(3))
	require.NoError(t, err)
	assert.Equal(t, 0, option.Default())
	assert.Equal(t, 3, option.Max())

	require.NoError(t, option.SetValue(7))
	assert.Equal(t, 3, option.Value())

	assert.ErrorIs(t, option.SetValue("7"), errs.ErrIntegerExpected)

	t.Run("existing default clamped", func(t *testing.T) {
		option, err := NewOption(types.Name("v"), WithDefault(5), WithIncrement(2))
		require.NoError(t, err)
		assert.Equal(t, 2, option.Value())
	})

	t.Run("non-integer default", func(t *testing.T) {
		_, err := NewOption(types.Name("v"), WithDefault("x"), WithIncrement(2))
		assert.ErrorIs(t, err, errs.ErrIntegerExpected)

		option, err := NewOption(types.Name("v"), WithDefault("x"))
		require.NoError(t, err)
		assert.ErrorIs(t, option.SetIncrement(2), errs.ErrIntegerExpected)
		assert.False(t, option.IsIncrement(), "a rejected default leaves the option unchanged")
		assert.Equal(t, 0, option.Max())
		assert.Equal(t, "x", option.Default())
		require.NoError(t, option.SetValue("y"))
	})
}

func TestOption_Default(t *testing.T) {
	option, err := NewOption(types.Name("t"), WithRule(OneOf("a", "b")))
	require.NoError(t, err)

	assert.ErrorIs(t, option.SetDefault("c"), errs.ErrInvalidValue)
	assert.False(t, option.HasDefault())
	assert.Nil(t, option.Default())

	require.NoError(t, option.SetDefault("a"))
	assert.True(t, option.HasDefault())
	assert.Equal(t, "a", option.Value())
}

func TestOption_File(t *testing.T) {
	dir := t.TempDir()
	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	for _, name := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o600))
	}

	t.Run("existing file", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(true, false))
		require.NoError(t, option.SetValue(filepath.Join(dir, "a.txt")))
		assert.Equal(t, filepath.Join(resolvedDir, "a.txt"), option.Value())
	})

	t.Run("missing file required", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(true, false))
		err := option.SetValue(filepath.Join(dir, "missing.txt"))
		assert.ErrorIs(t, err, errs.ErrFileResolution)
	})

	t.Run("missing file allowed", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(false, false))
		path := filepath.Join(dir, "missing.txt")
		require.NoError(t, option.SetValue(path))
		assert.Equal(t, path, option.Value())
	})

	t.Run("glob", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(true, true))
		require.NoError(t, option.SetValue(filepath.Join(dir, "*.txt")))
		assert.Equal(t, []string{
			filepath.Join(resolvedDir, "a.txt"),
			filepath.Join(resolvedDir, "b.txt"),
		}, option.Value())
	})

	t.Run("glob without match", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(true, true))
		assert.ErrorIs(t, option.SetValue(filepath.Join(dir, "*.md")), errs.ErrFileResolution)

		lenient, _ := NewOption(types.Name("f"), WithFile(false, true))
		require.NoError(t, lenient.SetValue(filepath.Join(dir, "*.md")))
		assert.Empty(t, lenient.Value())
	})

	t.Run("mapped after resolution", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"),
			WithFile(true, false),
			WithMap(func(v any) any { return filepath.Base(v.(string)) }))
		require.NoError(t, option.SetValue(filepath.Join(dir, "c.log")))
		assert.Equal(t, "c.log", option.Value())
	})

	t.Run("non-string value", func(t *testing.T) {
		option, _ := NewOption(types.Name("f"), WithFile(true, false))
		assert.ErrorIs(t, option.SetValue(1), errs.ErrFileResolution)
	})
}

func TestOption_HasNeeds(t *testing.T) {
	a, _ := NewOption(types.Name("a"), WithNeeds("b", "c"), WithNeeds("d"))
	b, _ := NewOption(types.Name("b"))
	c, _ := NewOption(types.Name("c"))
	_ = b.SetValue("x")
	_ = c.SetValue("0")

	known := map[string]*Option{"b": b, "c": c}
	result := a.HasNeeds(func(name string) (*Option, bool) {
		option, found := known[name]
		return option, found
	})

	assert.False(t, result.Satisfied())
	assert.Equal(t, []string{"c", "d"}, result.Unmet())
	assert.Equal(t, []string{"b", "c", "d"}, a.Needs())

	none, _ := NewOption(types.Name("n"))
	assert.True(t, none.HasNeeds(nil).Satisfied())
}
