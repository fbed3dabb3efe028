package commando

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/commando/internal/util"
)

// OneOf accepts string values found in allowed
func OneOf(allowed ...string) RuleFunc {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok {
			return false
		}
		for _, a := range allowed {
			if a == s {
				return true
			}
		}
		return false
	}
}

// Matches accepts string values matching pattern. It panics when pattern does not compile.
func Matches(pattern string) RuleFunc {
	re := regexp.MustCompile(pattern)

	return func(value any) bool {
		s, ok := value.(string)
		return ok && re.MatchString(s)
	}
}

// IsInteger accepts integers and decimal integer strings
func IsInteger(value any) bool {
	_, ok := util.ToInt(value)

	return ok
}

// InRange accepts integer values (or decimal strings) between min and max inclusive
func InRange(min, max int) RuleFunc {
	return func(value any) bool {
		i, ok := util.ToInt(value)
		return ok && i >= min && i <= max
	}
}

// IsDate accepts strings dateparse can interpret as a date or time
func IsDate(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := dateparse.ParseAny(s)

	return err == nil
}

// MapToInt converts decimal strings to int. Values which are not convertible pass through unchanged.
func MapToInt(value any) any {
	if i, ok := util.ToInt(value); ok {
		return i
	}

	return value
}

// MapToFloat converts numeric strings to float64. Values which are not convertible pass through unchanged.
func MapToFloat(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}

	return value
}

// MapToBool converts boolean strings (true, false, 1, 0, ...) to bool
func MapToBool(value any) any {
	if b, ok := util.ToBool(value); ok {
		return b
	}

	return value
}

// MapToTime converts date strings in any format understood by dateparse to time.Time. Values which
// cannot be parsed pass through unchanged - combine with IsDate to reject them.
func MapToTime(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t
	}

	return value
}

// MapToTimeIn is MapToTime with dates lacking a zone interpreted in loc
func MapToTimeIn(loc *time.Location) MapFunc {
	return func(value any) any {
		s, ok := value.(string)
		if !ok {
			return value
		}
		if t, err := dateparse.ParseIn(s, loc); err == nil {
			return t
		}
		return value
	}
}

// MapToLower lower-cases string values
func MapToLower(value any) any {
	if s, ok := value.(string); ok {
		return strings.ToLower(s)
	}

	return value
}

// MapToString formats any value with fmt
func MapToString(value any) any {
	if value == nil {
		return nil
	}

	return fmt.Sprint(value)
}
