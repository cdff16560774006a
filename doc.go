// Package skemadesc turns a schema graph (package schema, usually built with
// package dsl) into a Descriptor: a plain, JSON-serializable value that captures
// the graph's structure and constraints without the node types themselves.
//
// Design policy:
//   - One entry point, Serialize, walking the graph once per call. Nothing is cached.
//   - Wrapper kinds merge onto their child's descriptor (optional, nullable, default)
//     or pass it through unchanged (lazy, effects, branded, pipeline, catch, readonly).
//   - Checks are folded left to right into ordered Constraints. Unknown check kinds
//     are skipped so that newer node vocabularies degrade to "unconstrained".
//   - Native enumerations are described as "unknown" without their members.
//   - Values are never validated; only the schema's shape is described.
//
// Typical usage:
//
//	d, err := skemadesc.Serialize(schemaNode)
//	b, err := json.Marshal(d)  // ordered keys
//	y, err := yaml.Marshal(d)  // ordered mapping
package skemadesc
