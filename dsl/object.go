package dsl

import "github.com/reoring/skemadesc/schema"

// Field declares one object member.
func Field(name string, s schema.Node) schema.Field { return schema.Field{Name: name, Schema: s} }

// Object returns an object schema. Field order is preserved; a repeated name
// replaces the earlier field at its original position.
func Object(fields ...schema.Field) *schema.Object { return Extend(&schema.Object{}, fields...) }

// Extend returns a new object with base's fields followed by more. A field in
// more replaces the base field of the same name at its original position.
func Extend(base *schema.Object, more ...schema.Field) *schema.Object {
	shape := append([]schema.Field(nil), base.Shape...)
	for _, f := range more {
		replaced := false
		for i := range shape {
			if shape[i].Name == f.Name {
				shape[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			shape = append(shape, f)
		}
	}
	return &schema.Object{Meta: base.Meta, Shape: shape}
}

// Partial returns a copy of o with every field wrapped in Optional.
func Partial(o *schema.Object) *schema.Object {
	shape := make([]schema.Field, len(o.Shape))
	for i, f := range o.Shape {
		shape[i] = schema.Field{Name: f.Name, Schema: Optional(f.Schema)}
	}
	return &schema.Object{Meta: o.Meta, Shape: shape}
}

// Record returns a dictionary with key and value schemas.
func Record(key, value schema.Node) *schema.Record { return &schema.Record{Key: key, Value: value} }

// RecordOf returns a string-keyed dictionary.
func RecordOf(value schema.Node) *schema.Record { return Record(String(), value) }

// Map returns a map with arbitrary key schemas.
func Map(key, value schema.Node) *schema.Map { return &schema.Map{Key: key, Value: value} }
