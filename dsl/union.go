package dsl

import "github.com/reoring/skemadesc/schema"

// Union accepts any of options.
func Union(options ...schema.Node) *schema.Union { return &schema.Union{Options: options} }

// DiscriminatedUnion selects among object options by the discriminator field.
func DiscriminatedUnion(discriminator string, options ...schema.Node) *schema.DiscriminatedUnion {
	return &schema.DiscriminatedUnion{Discriminator: discriminator, Options: options}
}

// Intersection requires both left and right.
func Intersection(left, right schema.Node) *schema.Intersection {
	return &schema.Intersection{Left: left, Right: right}
}

// Function describes a callable taking args and returning returns. Nil args
// means no parameters.
func Function(args *schema.Tuple, returns schema.Node) *schema.Function {
	if args == nil {
		args = Tuple()
	}
	return &schema.Function{Args: args, Returns: returns}
}

// Promise describes a deferred value.
func Promise(value schema.Node) *schema.Promise { return &schema.Promise{Value: value} }
