package skemadesc_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/skemadesc"
	d "github.com/reoring/skemadesc/dsl"
	"github.com/reoring/skemadesc/schema"
)

type constraintCase struct {
	name   string
	checks []schema.Check
	want   skemadesc.Constraints
}

func runConstraintCases(t *testing.T, domain skemadesc.Domain, cases []constraintCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, skemadesc.ExtractConstraints(domain, tc.checks))
		})
	}
}

func TestExtractConstraints_Number(t *testing.T) {
	runConstraintCases(t, skemadesc.DomainNumber, []constraintCase{
		{"Should mark inclusive bounds", []schema.Check{d.Gte(0), d.Lte(10)}, skemadesc.Constraints{
			{Name: "min", Value: 0}, {Name: "minInclusive", Value: true},
			{Name: "max", Value: 10}, {Name: "maxInclusive", Value: true},
		}},
		{"Should omit inclusivity for exclusive bounds", []schema.Check{d.Gt(0), d.Lt(1.5)}, skemadesc.Constraints{
			{Name: "min", Value: 0}, {Name: "max", Value: 1.5},
		}},
		{"Should emit flags", []schema.Check{d.Int(), d.Finite(), d.MultipleOf(5)}, skemadesc.Constraints{
			{Name: "int", Value: true}, {Name: "finite", Value: true}, {Name: "multipleOf", Value: 5},
		}},
		{"Should let the last min win in place", []schema.Check{d.Min(1), d.Max(5), d.Min(2)}, skemadesc.Constraints{
			{Name: "min", Value: 2}, {Name: "minInclusive", Value: true},
			{Name: "max", Value: 5}, {Name: "maxInclusive", Value: true},
		}},
		{"Should skip string checks", []schema.Check{d.Email(), d.Regex("a", "")}, nil},
		{"Should return nothing for no checks", nil, nil},
	})
}

func TestExtractConstraints_BigInt(t *testing.T) {
	lo := big.NewInt(-5)
	runConstraintCases(t, skemadesc.DomainBigInt, []constraintCase{
		{"Should keep big values verbatim", []schema.Check{d.Gte(lo), d.MultipleOf(int64(3))}, skemadesc.Constraints{
			{Name: "min", Value: lo}, {Name: "minInclusive", Value: true}, {Name: "multipleOf", Value: int64(3)},
		}},
		{"Should skip number-only flags", []schema.Check{d.Int(), d.Finite(), d.Lt(int64(9))}, skemadesc.Constraints{
			{Name: "max", Value: int64(9)},
		}},
	})
}

func TestExtractConstraints_String(t *testing.T) {
	three := 3
	runConstraintCases(t, skemadesc.DomainString, []constraintCase{
		{"Should emit length bounds without inclusivity", []schema.Check{d.Min(3), d.Max(10), d.Length(5)}, skemadesc.Constraints{
			{Name: "min", Value: 3}, {Name: "max", Value: 10}, {Name: "length", Value: 5},
		}},
		{"Should emit affixes", []schema.Check{d.StartsWith("ab"), d.EndsWith("yz")}, skemadesc.Constraints{
			{Name: "startsWith", Value: "ab"}, {Name: "endsWith", Value: "yz"},
		}},
		{"Should emit includes with position", []schema.Check{d.Includes("mid", 2)}, skemadesc.Constraints{
			{Name: "includes", Value: "mid"}, {Name: "position", Value: 2},
		}},
		{"Should emit includes without position", []schema.Check{d.Includes("mid")}, skemadesc.Constraints{
			{Name: "includes", Value: "mid"},
		}},
		{"Should emit regex flags when present", []schema.Check{d.Regex("^a+$", "i")}, skemadesc.Constraints{
			{Name: "regex", Value: "^a+$"}, {Name: "flags", Value: "i"},
		}},
		{"Should omit empty regex flags", []schema.Check{d.Regex("^a+$", "")}, skemadesc.Constraints{
			{Name: "regex", Value: "^a+$"},
		}},
		{"Should emit ip version", []schema.Check{d.IP("v6")}, skemadesc.Constraints{
			{Name: "kind", Value: "ip"}, {Name: "version", Value: "v6"},
		}},
		{"Should emit datetime options", []schema.Check{d.Datetime(d.DatetimeOpt{Offset: true, Precision: &three})}, skemadesc.Constraints{
			{Name: "kind", Value: "datetime"}, {Name: "offset", Value: true}, {Name: "precision", Value: 3},
		}},
		{"Should omit default datetime options", []schema.Check{d.Datetime(d.DatetimeOpt{})}, skemadesc.Constraints{
			{Name: "kind", Value: "datetime"},
		}},
		{"Should tag formats and let the last one win", []schema.Check{d.Email(), d.URL(), d.UUID()}, skemadesc.Constraints{
			{Name: "kind", Value: "uuid"},
		}},
		{"Should skip numeric flags and normalizers", []schema.Check{d.Int(), d.Trim(), d.ToLowerCase(), d.MultipleOf(2)}, nil},
	})

	for _, c := range []schema.Check{d.Emoji(), d.CUID(), d.CUID2(), d.ULID()} {
		got := skemadesc.ExtractConstraints(skemadesc.DomainString, []schema.Check{c})
		v, ok := got.Get("kind")
		assert.True(t, ok)
		assert.Equal(t, string(c.Kind), v)
	}
}

func TestExtractConstraints_Date(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	runConstraintCases(t, skemadesc.DomainDate, []constraintCase{
		{"Should emit raw comparison values", []schema.Check{d.MinDate(from), d.MaxDate(to)}, skemadesc.Constraints{
			{Name: "min", Value: from.UnixMilli()}, {Name: "max", Value: to.UnixMilli()},
		}},
		{"Should skip other checks", []schema.Check{d.Int(), d.Email()}, nil},
	})
}

func TestConstraints_Set(t *testing.T) {
	var c skemadesc.Constraints
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, skemadesc.Constraints{{Name: "a", Value: 3}, {Name: "b", Value: 2}}, c)

	var other skemadesc.Constraints
	other.Set("c", 4)
	other.Set("b", 5)
	c.Merge(other)
	assert.Equal(t, skemadesc.Constraints{{Name: "a", Value: 3}, {Name: "b", Value: 5}, {Name: "c", Value: 4}}, c)

	_, ok := c.Get("missing")
	assert.False(t, ok)
}
