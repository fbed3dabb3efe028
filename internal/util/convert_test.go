package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	var nilSlice []string
	var nilPtr *int
	one := 1

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero", 0, false},
		{"int64 zero", int64(0), false},
		{"float zero", 0.0, false},
		{"uint", uint(3), true},
		{"negative", -1, true},
		{"empty string", "", false},
		{"string zero", "0", false},
		{"string false is truthy", "false", true},
		{"string", "x", true},
		{"nil slice", nilSlice, false},
		{"empty slice", []string{}, false},
		{"slice", []string{"a"}, true},
		{"empty map", map[string]int{}, false},
		{"nil pointer", nilPtr, false},
		{"pointer", &one, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		v    any
		want int
		ok   bool
	}{
		{3, 3, true},
		{int8(-2), -2, true},
		{uint16(7), 7, true},
		{" 42 ", 42, true},
		{"x", 0, false},
		{true, 0, false},
		{1.5, 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToInt(tt.v)
		assert.Equal(t, tt.ok, ok, "%v", tt.v)
		assert.Equal(t, tt.want, got, "%v", tt.v)
	}
}

func TestToBool(t *testing.T) {
	b, ok := ToBool(true)
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = ToBool("0")
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = ToBool("maybe")
	assert.False(t, ok)

	_, ok = ToBool(1)
	assert.False(t, ok)
}

func TestMin(t *testing.T) {
	assert.Equal(t, 3, Min(3, 4))
	assert.Equal(t, -5, Min(-2, -5))
	assert.Equal(t, 1.5, Min(2.5, 1.5))
	assert.Equal(t, uint8(1), Min(uint8(1), uint8(2)))
}
