package dsl

import "github.com/reoring/skemadesc/schema"

func Optional(inner schema.Node) *schema.Optional { return &schema.Optional{Inner: inner} }

func Nullable(inner schema.Node) *schema.Nullable { return &schema.Nullable{Inner: inner} }

// Nullish is Optional(Nullable(inner)).
func Nullish(inner schema.Node) *schema.Optional { return Optional(Nullable(inner)) }

// Default uses v when the value is absent.
func Default(inner schema.Node, v any) *schema.Default {
	return DefaultFunc(inner, func() (any, error) { return v, nil })
}

// DefaultFunc computes the default on demand.
func DefaultFunc(inner schema.Node, fn func() (any, error)) *schema.Default {
	return &schema.Default{Inner: inner, Value: fn}
}

// Catch uses fallback when inner fails.
func Catch(inner schema.Node, fallback any) *schema.Catch {
	return &schema.Catch{Inner: inner, Fallback: func(error) any { return fallback }}
}

// Lazy defers building the schema until it is needed.
func Lazy(getter func() schema.Node) *schema.Lazy { return &schema.Lazy{Getter: getter} }

// Refine attaches a check function to s.
func Refine(s schema.Node, fn func(v any) error) *schema.Effects {
	return &schema.Effects{Schema: s, Refine: fn}
}

// Brand tags s with a nominal brand.
func Brand(s schema.Node, brand string) *schema.Branded {
	return &schema.Branded{Inner: s, Brand: brand}
}

// Pipe feeds the output of in into out.
func Pipe(in, out schema.Node) *schema.Pipeline { return &schema.Pipeline{In: in, Out: out} }

func Readonly(inner schema.Node) *schema.Readonly { return &schema.Readonly{Inner: inner} }
