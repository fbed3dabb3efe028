package commando

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  RuleFunc
		value any
		want  bool
	}{
		{"one of match", OneOf("a", "b"), "b", true},
		{"one of miss", OneOf("a", "b"), "c", false},
		{"one of non-string", OneOf("1"), 1, false},
		{"matches", Matches(`^[a-z]{2}$`), "en", true},
		{"matches miss", Matches(`^[a-z]{2}$`), "eng", false},
		{"integer string", IsInteger, "-12", true},
		{"integer", IsInteger, 12, true},
		{"integer float string", IsInteger, "1.5", false},
		{"in range", InRange(1, 10), "10", true},
		{"out of range", InRange(1, 10), 11, false},
		{"date", IsDate, "2024-01-02", true},
		{"date with time", IsDate, "2024-01-02 15:04:05", true},
		{"not a date", IsDate, "yesterday-ish", false},
		{"date non-string", IsDate, 20240102, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule(tt.value))
		})
	}
}

func TestMappers(t *testing.T) {
	tests := []struct {
		name   string
		mapper MapFunc
		value  any
		want   any
	}{
		{"int", MapToInt, "42", 42},
		{"int passthrough", MapToInt, "x", "x"},
		{"float", MapToFloat, "1.5", 1.5},
		{"float passthrough", MapToFloat, "x", "x"},
		{"bool", MapToBool, "true", true},
		{"bool zero", MapToBool, "0", false},
		{"lower", MapToLower, "MiXeD", "mixed"},
		{"lower non-string", MapToLower, 3, 3},
		{"string", MapToString, 3, "3"},
		{"string nil", MapToString, nil, nil},
		{"time passthrough", MapToTime, "not a date", "not a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapper(tt.value))
		})
	}
}

func TestMapToTime(t *testing.T) {
	v := MapToTime("2024-01-02")
	tm, ok := v.(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), tm.UTC())

	loc := time.FixedZone("UTC+2", 2*60*60)
	v = MapToTimeIn(loc)("2024-01-02 10:00:00")
	tm, ok = v.(time.Time)
	assert.True(t, ok)
	assert.Equal(t, 8, tm.UTC().Hour())
}
