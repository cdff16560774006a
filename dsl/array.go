package dsl

import "github.com/reoring/skemadesc/schema"

// ArrayOpt configures Array.
type ArrayOpt func(*schema.Array)

// MinItems sets the minimum length.
func MinItems(n int) ArrayOpt { return func(a *schema.Array) { a.MinLength = &n } }

// MaxItems sets the maximum length.
func MaxItems(n int) ArrayOpt { return func(a *schema.Array) { a.MaxLength = &n } }

// Items sets an exact length.
func Items(n int) ArrayOpt { return func(a *schema.Array) { a.ExactLength = &n } }

// Nonempty is MinItems(1).
func Nonempty() ArrayOpt { return MinItems(1) }

// Array returns an array schema with the given element schema.
func Array(elem schema.Node, opts ...ArrayOpt) *schema.Array {
	a := &schema.Array{Element: elem}
	for _, o := range opts {
		o(a)
	}
	return a
}

// SetOpt configures Set.
type SetOpt func(*schema.Set)

// MinSize sets the minimum number of members.
func MinSize(n int) SetOpt { return func(s *schema.Set) { s.MinSize = &n } }

// MaxSize sets the maximum number of members.
func MaxSize(n int) SetOpt { return func(s *schema.Set) { s.MaxSize = &n } }

// Set returns a set schema with the given member schema.
func Set(elem schema.Node, opts ...SetOpt) *schema.Set {
	s := &schema.Set{Value: elem}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Tuple returns a fixed positional list.
func Tuple(items ...schema.Node) *schema.Tuple { return &schema.Tuple{Items: items} }

// TupleRest returns a tuple whose tail accepts any number of rest values.
func TupleRest(rest schema.Node, items ...schema.Node) *schema.Tuple {
	return &schema.Tuple{Items: items, Rest: rest}
}
