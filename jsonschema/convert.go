package jsonschema

import (
	"github.com/reoring/skemadesc"
)

// stringFormats maps descriptor string kinds to JSON Schema formats.
var stringFormats = map[string]string{
	"email":    "email",
	"url":      "uri",
	"uuid":     "uuid",
	"datetime": "date-time",
}

// FromDescriptor projects a descriptor into JSON Schema. The projection is
// lossy: kinds without a JSON Schema counterpart (undefined, void, symbol,
// function, promise, nan) become the empty schema, and string affix checks
// are dropped.
func FromDescriptor(d *skemadesc.Descriptor) *Schema {
	if d == nil {
		return &Schema{}
	}
	s := convert(d)
	s.Description = d.Description
	if d.Default != nil {
		s.Default = d.Default.Value
	}
	if d.IsNullable {
		s = &Schema{
			Description: s.Description,
			Default:     s.Default,
			AnyOf:       []*Schema{stripMeta(s), {Type: "null"}},
		}
	}
	return s
}

func stripMeta(s *Schema) *Schema {
	c := *s
	c.Description = ""
	c.Default = nil
	return &c
}

func convert(d *skemadesc.Descriptor) *Schema {
	switch d.Type {
	case skemadesc.TypeString:
		return stringSchema(d.Constraints)
	case skemadesc.TypeNumber:
		s := &Schema{Type: "number"}
		if _, ok := d.Constraints.Get("int"); ok {
			s.Type = "integer"
		}
		numericBounds(s, d.Constraints)
		return s
	case skemadesc.TypeBigInt:
		s := &Schema{Type: "integer"}
		numericBounds(s, d.Constraints)
		return s
	case skemadesc.TypeBoolean:
		return &Schema{Type: "boolean"}
	case skemadesc.TypeNull:
		return &Schema{Type: "null"}
	case skemadesc.TypeDate:
		return &Schema{Type: "string", Format: "date-time"}
	case skemadesc.TypeNever:
		return &Schema{Not: &Schema{}}
	case skemadesc.TypeLiteral:
		return &Schema{Const: d.Value}
	case skemadesc.TypeEnum:
		return &Schema{Type: "string", Enum: d.Values}
	case skemadesc.TypeArray:
		s := &Schema{Type: "array", Items: FromDescriptor(d.Element)}
		s.MinItems = intConstraint(d.Constraints, "minLength")
		s.MaxItems = intConstraint(d.Constraints, "maxLength")
		return s
	case skemadesc.TypeSet:
		s := &Schema{Type: "array", UniqueItems: true, Items: FromDescriptor(d.ValueSchema)}
		s.MinItems = intConstraint(d.Constraints, "minSize")
		s.MaxItems = intConstraint(d.Constraints, "maxSize")
		return s
	case skemadesc.TypeTuple:
		s := &Schema{Type: "array", PrefixItems: list(d.Items)}
		if d.Rest != nil {
			s.Items = FromDescriptor(d.Rest)
		} else {
			s.Items = false
			n := len(d.Items)
			s.MinItems, s.MaxItems = &n, &n
		}
		return s
	case skemadesc.TypeObject:
		s := &Schema{Type: "object", Properties: make(map[string]*Schema, len(d.Properties))}
		for _, p := range d.Properties {
			s.Properties[p.Name] = FromDescriptor(p.Descriptor)
			if !p.Descriptor.IsOptional && p.Descriptor.Default == nil {
				s.Required = append(s.Required, p.Name)
			}
		}
		return s
	case skemadesc.TypeRecord:
		return &Schema{Type: "object", AdditionalProperties: FromDescriptor(d.ValueSchema)}
	case skemadesc.TypeMap:
		pair := &Schema{
			Type:        "array",
			PrefixItems: []*Schema{FromDescriptor(d.Key), FromDescriptor(d.ValueSchema)},
			Items:       false,
		}
		return &Schema{Type: "array", Items: pair}
	case skemadesc.TypeUnion:
		return &Schema{AnyOf: list(d.Options)}
	case skemadesc.TypeDiscriminatedUnion:
		return &Schema{OneOf: list(d.Options)}
	case skemadesc.TypeIntersection:
		return &Schema{AllOf: []*Schema{FromDescriptor(d.Left), FromDescriptor(d.Right)}}
	default:
		return &Schema{}
	}
}

func stringSchema(cs skemadesc.Constraints) *Schema {
	s := &Schema{Type: "string"}
	if n := intConstraint(cs, "length"); n != nil {
		s.MinLength, s.MaxLength = n, n
	}
	if n := intConstraint(cs, "min"); n != nil {
		s.MinLength = n
	}
	if n := intConstraint(cs, "max"); n != nil {
		s.MaxLength = n
	}
	if v, ok := cs.Get("regex"); ok {
		s.Pattern, _ = v.(string)
	}
	if v, ok := cs.Get("kind"); ok {
		kind, _ := v.(string)
		if kind == "ip" {
			ver, _ := cs.Get("version")
			switch ver {
			case "v4":
				s.Format = "ipv4"
			case "v6":
				s.Format = "ipv6"
			}
		} else {
			s.Format = stringFormats[kind]
		}
	}
	return s
}

func numericBounds(s *Schema, cs skemadesc.Constraints) {
	if v, ok := cs.Get("min"); ok {
		if _, incl := cs.Get("minInclusive"); incl {
			s.Minimum = v
		} else {
			s.ExclusiveMinimum = v
		}
	}
	if v, ok := cs.Get("max"); ok {
		if _, incl := cs.Get("maxInclusive"); incl {
			s.Maximum = v
		} else {
			s.ExclusiveMaximum = v
		}
	}
	if v, ok := cs.Get("multipleOf"); ok {
		s.MultipleOf = v
	}
}

func intConstraint(cs skemadesc.Constraints, name string) *int {
	v, ok := cs.Get(name)
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		return &n
	case int64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	}
	return nil
}

func list(ds []*skemadesc.Descriptor) []*Schema {
	out := make([]*Schema, len(ds))
	for i, d := range ds {
		out[i] = FromDescriptor(d)
	}
	return out
}
