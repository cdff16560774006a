package dsl

import (
	"time"

	"github.com/reoring/skemadesc/schema"
)

// Min is an inclusive lower bound: a minimum length for strings, a minimum
// value for numbers and bigints.
func Min(v any) schema.Check { return schema.Check{Kind: schema.CheckMin, Value: v, Inclusive: true} }

// Max is an inclusive upper bound.
func Max(v any) schema.Check { return schema.Check{Kind: schema.CheckMax, Value: v, Inclusive: true} }

// Gte is an alias of Min.
func Gte(v any) schema.Check { return Min(v) }

// Lte is an alias of Max.
func Lte(v any) schema.Check { return Max(v) }

// Gt is an exclusive lower bound.
func Gt(v any) schema.Check { return schema.Check{Kind: schema.CheckMin, Value: v} }

// Lt is an exclusive upper bound.
func Lt(v any) schema.Check { return schema.Check{Kind: schema.CheckMax, Value: v} }

// Positive is Gt(0).
func Positive() schema.Check { return Gt(0) }

// Nonnegative is Gte(0).
func Nonnegative() schema.Check { return Gte(0) }

// Negative is Lt(0).
func Negative() schema.Check { return Lt(0) }

// Length requires an exact string length.
func Length(n int) schema.Check { return schema.Check{Kind: schema.CheckLength, Value: n} }

// MultipleOf requires the value to be a multiple of step.
func MultipleOf(step any) schema.Check {
	return schema.Check{Kind: schema.CheckMultipleOf, Value: step}
}

// Int requires an integral number.
func Int() schema.Check { return schema.Check{Kind: schema.CheckInt} }

// Finite rejects ±Inf.
func Finite() schema.Check { return schema.Check{Kind: schema.CheckFinite} }

func StartsWith(prefix string) schema.Check {
	return schema.Check{Kind: schema.CheckStartsWith, Value: prefix}
}

func EndsWith(suffix string) schema.Check {
	return schema.Check{Kind: schema.CheckEndsWith, Value: suffix}
}

// Includes requires substr, optionally at or after position.
func Includes(substr string, position ...int) schema.Check {
	c := schema.Check{Kind: schema.CheckIncludes, Value: substr}
	if len(position) > 0 {
		p := position[0]
		c.Position = &p
	}
	return c
}

// Regex matches pattern. flags are kept verbatim (for example "i").
func Regex(pattern string, flags string) schema.Check {
	return schema.Check{Kind: schema.CheckRegex, Pattern: pattern, Flags: flags}
}

func Email() schema.Check { return schema.Check{Kind: schema.CheckEmail} }
func URL() schema.Check   { return schema.Check{Kind: schema.CheckURL} }
func Emoji() schema.Check { return schema.Check{Kind: schema.CheckEmoji} }
func UUID() schema.Check  { return schema.Check{Kind: schema.CheckUUID} }
func CUID() schema.Check  { return schema.Check{Kind: schema.CheckCUID} }
func CUID2() schema.Check { return schema.Check{Kind: schema.CheckCUID2} }
func ULID() schema.Check  { return schema.Check{Kind: schema.CheckULID} }

// IP requires an IP address. version is "v4", "v6" or empty for either.
func IP(version string) schema.Check { return schema.Check{Kind: schema.CheckIP, Version: version} }

// DatetimeOpt configures Datetime.
type DatetimeOpt struct {
	Offset    bool // allow a UTC offset instead of only "Z"
	Precision *int // fixed number of fractional second digits
}

// Datetime requires an ISO 8601 timestamp.
func Datetime(opt DatetimeOpt) schema.Check {
	return schema.Check{Kind: schema.CheckDatetime, Offset: opt.Offset, Precision: opt.Precision}
}

// Trim, ToLowerCase and ToUpperCase normalize the value and carry no constraint.
func Trim() schema.Check        { return schema.Check{Kind: schema.CheckTrim} }
func ToLowerCase() schema.Check { return schema.Check{Kind: schema.CheckToLowerCase} }
func ToUpperCase() schema.Check { return schema.Check{Kind: schema.CheckToUpperCase} }

// MinDate bounds a Date from below. The stored value is t in Unix milliseconds.
func MinDate(t time.Time) schema.Check {
	return schema.Check{Kind: schema.CheckMin, Value: t.UnixMilli()}
}

// MaxDate bounds a Date from above. The stored value is t in Unix milliseconds.
func MaxDate(t time.Time) schema.Check {
	return schema.Check{Kind: schema.CheckMax, Value: t.UnixMilli()}
}
