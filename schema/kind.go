package schema

import "strconv"

// Kind identifies a schema node type.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindNaN
	KindBigInt
	KindBoolean
	KindDate
	KindSymbol
	KindUndefined
	KindNull
	KindAny
	KindUnknown
	KindNever
	KindVoid
	KindLiteral
	KindEnum
	KindNativeEnum
	KindArray
	KindTuple
	KindObject
	KindRecord
	KindMap
	KindSet
	KindUnion
	KindDiscriminatedUnion
	KindIntersection
	KindFunction
	KindPromise
	KindLazy
	KindEffects
	KindOptional
	KindNullable
	KindDefault
	KindCatch
	KindBranded
	KindPipeline
	KindReadonly
)

var kindNames = [...]string{
	KindString:             "string",
	KindNumber:             "number",
	KindNaN:                "nan",
	KindBigInt:             "bigint",
	KindBoolean:            "boolean",
	KindDate:               "date",
	KindSymbol:             "symbol",
	KindUndefined:          "undefined",
	KindNull:               "null",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindVoid:               "void",
	KindLiteral:            "literal",
	KindEnum:               "enum",
	KindNativeEnum:         "nativeEnum",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindObject:             "object",
	KindRecord:             "record",
	KindMap:                "map",
	KindSet:                "set",
	KindUnion:              "union",
	KindDiscriminatedUnion: "discriminatedUnion",
	KindIntersection:       "intersection",
	KindFunction:           "function",
	KindPromise:            "promise",
	KindLazy:               "lazy",
	KindEffects:            "effects",
	KindOptional:           "optional",
	KindNullable:           "nullable",
	KindDefault:            "default",
	KindCatch:              "catch",
	KindBranded:            "branded",
	KindPipeline:           "pipeline",
	KindReadonly:           "readonly",
}

// String returns the lower camel case name of the kind, or "kind(N)" for values
// outside the known set.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}
