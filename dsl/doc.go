// Package dsl provides Zod-like constructors for schema graphs.
//
// Overview
//   - Leaves: String/Number/BigInt/Date take checks (Min, Max, Length, Regex, Email, Int, ...).
//   - Check-free leaves: Boolean, NaN, Symbol, Undefined, Null, Any, Unknown, Never, Void.
//   - Values: Literal, Enum, NativeEnum.
//   - Collections: Array (MinItems/MaxItems/Items), Set (MinSize/MaxSize), Tuple/TupleRest,
//     Object/Field/Extend/Partial, Record/RecordOf, Map.
//   - Composites: Union, DiscriminatedUnion, Intersection, Function, Promise.
//   - Wrappers: Optional, Nullable, Nullish, Default/DefaultFunc, Catch, Lazy, Refine, Brand, Pipe, Readonly.
//   - Describe attaches a description to any node.
//
// Every constructor returns a concrete node from package schema, so the result
// can be passed anywhere a schema.Node is accepted.
//
// Example
//
//	user := d.Object(
//	    d.Field("name", d.String(d.Min(1))),
//	    d.Field("age", d.Optional(d.Number(d.Int(), d.Gte(0)))),
//	    d.Field("role", d.Default(d.Enum("admin", "member"), "member")),
//	)
//	desc, err := skemadesc.Serialize(user)
package dsl
