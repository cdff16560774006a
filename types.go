package skemadesc

// Type is the descriptor type tag. The vocabulary is closed.
type Type string

const (
	TypeString             Type = "string"
	TypeNumber             Type = "number"
	TypeNaN                Type = "nan"
	TypeBigInt             Type = "bigint"
	TypeBoolean            Type = "boolean"
	TypeDate               Type = "date"
	TypeSymbol             Type = "symbol"
	TypeUndefined          Type = "undefined"
	TypeNull               Type = "null"
	TypeAny                Type = "any"
	TypeUnknown            Type = "unknown"
	TypeNever              Type = "never"
	TypeVoid               Type = "void"
	TypeLiteral            Type = "literal"
	TypeEnum               Type = "enum"
	TypeArray              Type = "array"
	TypeTuple              Type = "tuple"
	TypeObject             Type = "object"
	TypeRecord             Type = "record"
	TypeMap                Type = "map"
	TypeSet                Type = "set"
	TypeUnion              Type = "union"
	TypeDiscriminatedUnion Type = "discriminatedUnion"
	TypeIntersection       Type = "intersection"
	TypeFunction           Type = "function"
	TypePromise            Type = "promise"
)

// Domain selects the constraint table used to read a check list.
type Domain int

const (
	DomainNumber Domain = iota
	DomainBigInt
	DomainString
	DomainDate
)

// Logger receives debug records about degraded output. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
}

// Options configures SerializeWith. The zero value matches Serialize.
type Options struct {
	// MaxDepth bounds the number of JSON Pointer segments below the root
	// descriptor ("/properties/tags/element" is 3). 0 means unlimited.
	MaxDepth int
	// Logger is optional. When nil nothing is logged.
	Logger Logger
}
