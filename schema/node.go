package schema

// Node is a single schema graph node. Every concrete node type in this package
// is a pointer to a struct that embeds Meta.
type Node interface {
	Kind() Kind
	// Describe returns the optional free-text description attached to the node.
	Describe() string
}

// Meta carries the metadata shared by every node.
type Meta struct {
	Description string
}

func (m Meta) Describe() string { return m.Description }

// SetDescription replaces the description.
func (m *Meta) SetDescription(text string) { m.Description = text }

// ---- leaves with checks ----

// String is a string schema.
type String struct {
	Meta
	Checks []Check
}

func (*String) Kind() Kind { return KindString }

// Number is a float64 schema.
type Number struct {
	Meta
	Checks []Check
}

func (*Number) Kind() Kind { return KindNumber }

// BigInt is an arbitrary precision integer schema. Check values are usually
// *big.Int or int64.
type BigInt struct {
	Meta
	Checks []Check
}

func (*BigInt) Kind() Kind { return KindBigInt }

// Date is a timestamp schema. Min/max check values are the raw comparison
// values (milliseconds since the Unix epoch when built through the dsl).
type Date struct {
	Meta
	Checks []Check
}

func (*Date) Kind() Kind { return KindDate }

// ---- leaves without checks ----

// Primitive covers every leaf kind that carries no checks: boolean, nan,
// symbol, undefined, null, any, unknown, never and void.
type Primitive struct {
	Meta
	Of Kind
}

func (p *Primitive) Kind() Kind { return p.Of }

// Literal matches exactly one scalar value.
type Literal struct {
	Meta
	Value any
}

func (*Literal) Kind() Kind { return KindLiteral }

// Enum is a closed set of string literals in declaration order.
type Enum struct {
	Meta
	Values []string
}

func (*Enum) Kind() Kind { return KindEnum }

// NativeEnum is an enumeration defined outside this package (for example a Go
// const block). Its members are opaque to serializers.
type NativeEnum struct {
	Meta
	Values map[string]any
}

func (*NativeEnum) Kind() Kind { return KindNativeEnum }

// ---- collections and composites ----

// Array is a homogeneous list. Length bounds are optional.
type Array struct {
	Meta
	Element     Node
	ExactLength *int
	MinLength   *int
	MaxLength   *int
}

func (*Array) Kind() Kind { return KindArray }

// Tuple is a fixed positional list with an optional variadic tail.
type Tuple struct {
	Meta
	Items []Node
	Rest  Node
}

func (*Tuple) Kind() Kind { return KindTuple }

// Field is a named member of an object shape.
type Field struct {
	Name   string
	Schema Node
}

// Object maps declared keys to value schemas. Shape order is preserved.
type Object struct {
	Meta
	Shape []Field
}

func (*Object) Kind() Kind { return KindObject }

// Record is a string-keyed dictionary.
type Record struct {
	Meta
	Key   Node
	Value Node
}

func (*Record) Kind() Kind { return KindRecord }

// Map is a dictionary with arbitrary key schemas.
type Map struct {
	Meta
	Key   Node
	Value Node
}

func (*Map) Kind() Kind { return KindMap }

// Set is a collection of unique values.
type Set struct {
	Meta
	Value   Node
	MinSize *int
	MaxSize *int
}

func (*Set) Kind() Kind { return KindSet }

// Union accepts any of its options, tried in order.
type Union struct {
	Meta
	Options []Node
}

func (*Union) Kind() Kind { return KindUnion }

// DiscriminatedUnion selects an option by the value of the Discriminator field.
type DiscriminatedUnion struct {
	Meta
	Discriminator string
	Options       []Node
}

func (*DiscriminatedUnion) Kind() Kind { return KindDiscriminatedUnion }

// Intersection requires both operands.
type Intersection struct {
	Meta
	Left  Node
	Right Node
}

func (*Intersection) Kind() Kind { return KindIntersection }

// Function describes a callable. Args is usually a *Tuple.
type Function struct {
	Meta
	Args    Node
	Returns Node
}

func (*Function) Kind() Kind { return KindFunction }

// Promise describes a deferred value.
type Promise struct {
	Meta
	Value Node
}

func (*Promise) Kind() Kind { return KindPromise }

// ---- wrappers ----

// Lazy defers construction of its schema until Getter is called. It is the only
// way to express a self-referential graph. Getter is not memoized.
type Lazy struct {
	Meta
	Getter func() Node
}

func (*Lazy) Kind() Kind { return KindLazy }

// Effects attaches a refinement or transform to Schema.
type Effects struct {
	Meta
	Schema Node
	Refine func(v any) error
}

func (*Effects) Kind() Kind { return KindEffects }

// Optional allows the value to be absent.
type Optional struct {
	Meta
	Inner Node
}

func (*Optional) Kind() Kind { return KindOptional }

// Nullable allows the value to be null.
type Nullable struct {
	Meta
	Inner Node
}

func (*Nullable) Kind() Kind { return KindNullable }

// Default substitutes Value() when the input is absent.
type Default struct {
	Meta
	Inner Node
	Value func() (any, error)
}

func (*Default) Kind() Kind { return KindDefault }

// Catch substitutes Fallback(err) when Inner fails.
type Catch struct {
	Meta
	Inner    Node
	Fallback func(err error) any
}

func (*Catch) Kind() Kind { return KindCatch }

// Branded tags Inner with a nominal brand.
type Branded struct {
	Meta
	Inner Node
	Brand string
}

func (*Branded) Kind() Kind { return KindBranded }

// Pipeline feeds the output of In into Out.
type Pipeline struct {
	Meta
	In  Node
	Out Node
}

func (*Pipeline) Kind() Kind { return KindPipeline }

// Readonly marks Inner as immutable.
type Readonly struct {
	Meta
	Inner Node
}

func (*Readonly) Kind() Kind { return KindReadonly }
