package dsl

import "github.com/reoring/skemadesc/schema"

// String returns a string schema with the given checks.
func String(checks ...schema.Check) *schema.String { return &schema.String{Checks: checks} }

// Number returns a number schema with the given checks.
func Number(checks ...schema.Check) *schema.Number { return &schema.Number{Checks: checks} }

// BigInt returns a bigint schema with the given checks.
func BigInt(checks ...schema.Check) *schema.BigInt { return &schema.BigInt{Checks: checks} }

// Date returns a date schema. Use MinDate/MaxDate for bounds.
func Date(checks ...schema.Check) *schema.Date { return &schema.Date{Checks: checks} }

func Boolean() *schema.Primitive   { return primitive(schema.KindBoolean) }
func NaN() *schema.Primitive       { return primitive(schema.KindNaN) }
func Symbol() *schema.Primitive    { return primitive(schema.KindSymbol) }
func Undefined() *schema.Primitive { return primitive(schema.KindUndefined) }
func Null() *schema.Primitive      { return primitive(schema.KindNull) }
func Any() *schema.Primitive       { return primitive(schema.KindAny) }
func Unknown() *schema.Primitive   { return primitive(schema.KindUnknown) }
func Never() *schema.Primitive     { return primitive(schema.KindNever) }
func Void() *schema.Primitive      { return primitive(schema.KindVoid) }

func primitive(k schema.Kind) *schema.Primitive { return &schema.Primitive{Of: k} }

// Literal matches exactly v.
func Literal(v any) *schema.Literal { return &schema.Literal{Value: v} }

// Enum is a closed set of string values in declaration order.
func Enum(values ...string) *schema.Enum { return &schema.Enum{Values: values} }

// NativeEnum wraps an enumeration declared outside the dsl, such as a Go
// const block rendered as name -> value.
func NativeEnum(members map[string]any) *schema.NativeEnum {
	return &schema.NativeEnum{Values: members}
}

// Describe sets the description of n and returns n.
func Describe[N schema.Node](n N, text string) N {
	if d, ok := any(n).(interface{ SetDescription(string) }); ok {
		d.SetDescription(text)
	}
	return n
}
