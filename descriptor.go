package skemadesc

// Descriptor is the JSON-compatible description of one schema node. Only the
// fields relevant to Type are populated; modifier fields may appear on any Type.
type Descriptor struct {
	Type        Type
	Description string

	// literal
	Value any
	// enum
	Values []any

	// array
	Element *Descriptor
	// tuple
	Items []*Descriptor
	Rest  *Descriptor
	// object
	Properties Properties
	// record, map (Key and ValueSchema); set, promise (ValueSchema)
	Key         *Descriptor
	ValueSchema *Descriptor
	// union, discriminatedUnion
	Discriminator string
	Options       []*Descriptor
	// intersection
	Left  *Descriptor
	Right *Descriptor
	// function
	Args    *Descriptor
	Returns *Descriptor

	// Constraints holds the fields extracted from checks and length/size bounds.
	Constraints Constraints

	IsOptional bool
	IsNullable bool
	Default    *DefaultValue
}

// DefaultValue wraps the value produced by a default accessor so that a nil
// default stays distinguishable from no default.
type DefaultValue struct {
	Value any
}

// Property is one object member.
type Property struct {
	Name       string
	Descriptor *Descriptor
}

// Properties keeps object members in declaration order.
type Properties []Property

// Get returns the descriptor of the named property.
func (ps Properties) Get(name string) (*Descriptor, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Descriptor, true
		}
	}
	return nil, false
}

// Constraint is a single extracted field such as {"min", 3}.
type Constraint struct {
	Name  string
	Value any
}

// Constraints is an ordered set of constraint fields. Setting a name that is
// already present replaces its value in place, so the last write wins while
// first-seen order is kept.
type Constraints []Constraint

// Set writes name=v.
func (c *Constraints) Set(name string, v any) {
	for i := range *c {
		if (*c)[i].Name == name {
			(*c)[i].Value = v
			return
		}
	}
	*c = append(*c, Constraint{Name: name, Value: v})
}

// Get returns the value stored under name.
func (c Constraints) Get(name string) (any, bool) {
	for _, it := range c {
		if it.Name == name {
			return it.Value, true
		}
	}
	return nil, false
}

// Len returns the number of fields.
func (c Constraints) Len() int { return len(c) }

// Merge sets every field of other onto c in order.
func (c *Constraints) Merge(other Constraints) {
	for _, it := range other {
		c.Set(it.Name, it.Value)
	}
}

// entry is one output key in emission order.
type entry struct {
	key   string
	value any
}

// entries lists the populated output fields in a stable order: type,
// description, structure, constraints, then modifiers.
func (d *Descriptor) entries() []entry {
	out := make([]entry, 0, 8+len(d.Constraints))
	out = append(out, entry{"type", string(d.Type)})
	if d.Description != "" {
		out = append(out, entry{"description", d.Description})
	}
	switch d.Type {
	case TypeLiteral:
		out = append(out, entry{"value", d.Value})
	case TypeEnum:
		vals := d.Values
		if vals == nil {
			vals = []any{}
		}
		out = append(out, entry{"values", vals})
	case TypeTuple:
		out = append(out, entry{"items", nonNilList(d.Items)})
	case TypeObject:
		ps := d.Properties
		if ps == nil {
			ps = Properties{}
		}
		out = append(out, entry{"properties", ps})
	case TypeUnion:
		out = append(out, entry{"options", nonNilList(d.Options)})
	case TypeDiscriminatedUnion:
		out = append(out, entry{"discriminator", d.Discriminator})
		out = append(out, entry{"options", nonNilList(d.Options)})
	}
	if d.Element != nil {
		out = append(out, entry{"element", d.Element})
	}
	if d.Rest != nil {
		out = append(out, entry{"rest", d.Rest})
	}
	if d.Key != nil {
		out = append(out, entry{"key", d.Key})
	}
	if d.ValueSchema != nil {
		out = append(out, entry{"value", d.ValueSchema})
	}
	if d.Left != nil {
		out = append(out, entry{"left", d.Left})
	}
	if d.Right != nil {
		out = append(out, entry{"right", d.Right})
	}
	if d.Args != nil {
		out = append(out, entry{"args", d.Args})
	}
	if d.Returns != nil {
		out = append(out, entry{"returns", d.Returns})
	}
	for _, c := range d.Constraints {
		out = append(out, entry{c.Name, c.Value})
	}
	if d.IsOptional {
		out = append(out, entry{"isOptional", true})
	}
	if d.IsNullable {
		out = append(out, entry{"isNullable", true})
	}
	if d.Default != nil {
		out = append(out, entry{"defaultValue", d.Default.Value})
	}
	return out
}

func nonNilList(ds []*Descriptor) []*Descriptor {
	if ds == nil {
		return []*Descriptor{}
	}
	return ds
}

// ToMap renders d as plain nested maps and slices with the same keys and
// nesting as the descriptor's JSON. Scalar values (constraints, literals,
// defaults) keep their Go types, so an int bound stays an int rather than the
// float64 a JSON decoder would produce.
func (d *Descriptor) ToMap() map[string]any {
	if d == nil {
		return nil
	}
	es := d.entries()
	m := make(map[string]any, len(es))
	for _, e := range es {
		m[e.key] = toPlain(e.value)
	}
	return m
}

func toPlain(v any) any {
	switch t := v.(type) {
	case *Descriptor:
		return t.ToMap()
	case []*Descriptor:
		out := make([]any, len(t))
		for i, d := range t {
			out[i] = d.ToMap()
		}
		return out
	case Properties:
		out := make(map[string]any, len(t))
		for _, p := range t {
			out[p.Name] = p.Descriptor.ToMap()
		}
		return out
	default:
		return v
	}
}
