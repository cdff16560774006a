package skemadesc

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reoring/skemadesc/internal/walk"
	"github.com/reoring/skemadesc/schema"
)

// leafTypes maps check-free leaf kinds to their descriptor type.
var leafTypes = map[schema.Kind]Type{
	schema.KindBoolean:   TypeBoolean,
	schema.KindNaN:       TypeNaN,
	schema.KindSymbol:    TypeSymbol,
	schema.KindUndefined: TypeUndefined,
	schema.KindNull:      TypeNull,
	schema.KindAny:       TypeAny,
	schema.KindUnknown:   TypeUnknown,
	schema.KindNever:     TypeNever,
	schema.KindVoid:      TypeVoid,
}

// Serialize builds the descriptor of n. Each call walks the graph again and
// returns a fresh descriptor; nothing is cached.
//
// The error is an *Error wrapping ErrUnrecognizedKind or ErrCyclicSchema, or
// the error returned by a default value accessor, unchanged.
//
// Cycles are detected by Lazy node identity. A getter that returns a freshly
// built graph containing a new Lazy on every call is not detected and recurses
// without bound; set Options.MaxDepth to turn that into ErrMaxDepth.
func Serialize(n schema.Node) (*Descriptor, error) {
	return SerializeWith(n, Options{})
}

// SerializeWith is Serialize with options.
func SerializeWith(n schema.Node, opt Options) (*Descriptor, error) {
	s := &serializer{st: walk.New(opt.MaxDepth), log: opt.Logger}
	return s.node(n)
}

// MustSerialize is like Serialize but panics on error. It is meant for
// package-level descriptors built from static schemas.
func MustSerialize(n schema.Node) *Descriptor {
	d, err := Serialize(n)
	if err != nil {
		panic(err)
	}
	return d
}

type serializer struct {
	st  *walk.State
	log Logger
}

func (s *serializer) node(n schema.Node) (*Descriptor, error) {
	if isNil(n) {
		return nil, s.fail(kindOf(n), ErrUnrecognizedKind)
	}
	switch t := n.(type) {
	// wrappers
	case *schema.Optional:
		d, err := s.node(t.Inner)
		if err != nil {
			return nil, err
		}
		d.IsOptional = true
		overrideDescription(d, t.Meta)
		return d, nil
	case *schema.Nullable:
		d, err := s.node(t.Inner)
		if err != nil {
			return nil, err
		}
		d.IsNullable = true
		overrideDescription(d, t.Meta)
		return d, nil
	case *schema.Default:
		d, err := s.node(t.Inner)
		if err != nil {
			return nil, err
		}
		var v any
		if t.Value != nil {
			if v, err = t.Value(); err != nil {
				return nil, err
			}
		}
		d.Default = &DefaultValue{Value: v}
		overrideDescription(d, t.Meta)
		return d, nil
	case *schema.Lazy:
		return s.lazy(t)
	case *schema.Effects:
		return s.node(t.Schema)
	case *schema.Branded:
		return s.node(t.Inner)
	case *schema.Pipeline:
		return s.node(t.Out)
	case *schema.Catch:
		return s.node(t.Inner)
	case *schema.Readonly:
		return s.node(t.Inner)

	// leaves with checks
	case *schema.String:
		return s.checked(TypeString, DomainString, t.Meta, t.Checks), nil
	case *schema.Number:
		return s.checked(TypeNumber, DomainNumber, t.Meta, t.Checks), nil
	case *schema.BigInt:
		return s.checked(TypeBigInt, DomainBigInt, t.Meta, t.Checks), nil
	case *schema.Date:
		return s.checked(TypeDate, DomainDate, t.Meta, t.Checks), nil

	// leaves without checks
	case *schema.Primitive:
		typ, ok := leafTypes[t.Of]
		if !ok {
			return nil, s.fail(t.Of.String(), ErrUnrecognizedKind)
		}
		return &Descriptor{Type: typ, Description: t.Description}, nil
	case *schema.Literal:
		return &Descriptor{Type: TypeLiteral, Description: t.Description, Value: t.Value}, nil
	case *schema.Enum:
		vals := make([]any, len(t.Values))
		for i, v := range t.Values {
			vals[i] = v
		}
		return &Descriptor{Type: TypeEnum, Description: t.Description, Values: vals}, nil
	case *schema.NativeEnum:
		s.debug("native enum members are not described", "members", len(t.Values))
		return &Descriptor{Type: TypeUnknown, Description: t.Description}, nil

	// composites
	case *schema.Array:
		return s.array(t)
	case *schema.Set:
		return s.set(t)
	case *schema.Tuple:
		return s.tuple(t)
	case *schema.Object:
		return s.object(t)
	case *schema.Record:
		return s.keyValue(TypeRecord, t.Meta, t.Key, t.Value)
	case *schema.Map:
		return s.keyValue(TypeMap, t.Meta, t.Key, t.Value)
	case *schema.Union:
		opts, err := s.list("options", t.Options)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Type: TypeUnion, Description: t.Description, Options: opts}, nil
	case *schema.DiscriminatedUnion:
		opts, err := s.list("options", t.Options)
		if err != nil {
			return nil, err
		}
		return &Descriptor{
			Type:          TypeDiscriminatedUnion,
			Description:   t.Description,
			Discriminator: t.Discriminator,
			Options:       opts,
		}, nil
	case *schema.Intersection:
		d := &Descriptor{Type: TypeIntersection, Description: t.Description}
		var err error
		if d.Left, err = s.child("left", t.Left); err != nil {
			return nil, err
		}
		if d.Right, err = s.child("right", t.Right); err != nil {
			return nil, err
		}
		return d, nil
	case *schema.Function:
		d := &Descriptor{Type: TypeFunction, Description: t.Description}
		var err error
		if d.Args, err = s.child("args", t.Args); err != nil {
			return nil, err
		}
		if d.Returns, err = s.child("returns", t.Returns); err != nil {
			return nil, err
		}
		return d, nil
	case *schema.Promise:
		v, err := s.child("value", t.Value)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Type: TypePromise, Description: t.Description, ValueSchema: v}, nil

	default:
		return nil, s.fail(fmt.Sprintf("%s (%T)", t.Kind(), t), ErrUnrecognizedKind)
	}
}

// overrideDescription lets a modifier's own description replace the inner one.
func overrideDescription(d *Descriptor, m schema.Meta) {
	if m.Description != "" {
		d.Description = m.Description
	}
}

func (s *serializer) checked(typ Type, domain Domain, m schema.Meta, checks []schema.Check) *Descriptor {
	cs, skipped := extract(domain, checks)
	for _, k := range skipped {
		s.debug("check kind ignored", "type", typ, "check", k)
	}
	return &Descriptor{Type: typ, Description: m.Description, Constraints: cs}
}

func (s *serializer) lazy(l *schema.Lazy) (*Descriptor, error) {
	if !s.st.EnterLazy(l) {
		return nil, s.fail(l.Kind().String(), ErrCyclicSchema)
	}
	defer s.st.LeaveLazy(l)
	if l.Getter == nil {
		return nil, s.fail(l.Kind().String(), ErrUnrecognizedKind)
	}
	return s.node(l.Getter())
}

func (s *serializer) array(a *schema.Array) (*Descriptor, error) {
	el, err := s.child("element", a.Element)
	if err != nil {
		return nil, err
	}
	d := &Descriptor{Type: TypeArray, Description: a.Description, Element: el}
	if a.ExactLength != nil {
		d.Constraints.Set("minLength", *a.ExactLength)
		d.Constraints.Set("maxLength", *a.ExactLength)
		return d, nil
	}
	if a.MinLength != nil {
		d.Constraints.Set("minLength", *a.MinLength)
	}
	if a.MaxLength != nil {
		d.Constraints.Set("maxLength", *a.MaxLength)
	}
	return d, nil
}

func (s *serializer) set(st *schema.Set) (*Descriptor, error) {
	v, err := s.child("value", st.Value)
	if err != nil {
		return nil, err
	}
	d := &Descriptor{Type: TypeSet, Description: st.Description, ValueSchema: v}
	if st.MinSize != nil {
		d.Constraints.Set("minSize", *st.MinSize)
	}
	if st.MaxSize != nil {
		d.Constraints.Set("maxSize", *st.MaxSize)
	}
	return d, nil
}

func (s *serializer) tuple(t *schema.Tuple) (*Descriptor, error) {
	items, err := s.list("items", t.Items)
	if err != nil {
		return nil, err
	}
	d := &Descriptor{Type: TypeTuple, Description: t.Description, Items: items}
	if t.Rest != nil {
		if d.Rest, err = s.child("rest", t.Rest); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// object serializes the shape in declaration order. A repeated field name
// replaces the earlier entry at its first position.
func (s *serializer) object(o *schema.Object) (*Descriptor, error) {
	props := make(Properties, 0, len(o.Shape))
	d := &Descriptor{Type: TypeObject, Description: o.Description, Properties: props}
	if len(o.Shape) == 0 {
		return d, nil
	}
	if !s.st.Push("properties") {
		defer s.st.Pop()
		return nil, s.fail(o.Kind().String(), ErrMaxDepth)
	}
	defer s.st.Pop()
	seen := make(map[string]int, len(o.Shape))
	for _, f := range o.Shape {
		pd, err := s.child(f.Name, f.Schema)
		if err != nil {
			return nil, err
		}
		if i, ok := seen[f.Name]; ok {
			props[i].Descriptor = pd
			continue
		}
		seen[f.Name] = len(props)
		props = append(props, Property{Name: f.Name, Descriptor: pd})
	}
	d.Properties = props
	return d, nil
}

func (s *serializer) keyValue(typ Type, m schema.Meta, key, value schema.Node) (*Descriptor, error) {
	d := &Descriptor{Type: typ, Description: m.Description}
	var err error
	if d.Key, err = s.child("key", key); err != nil {
		return nil, err
	}
	if d.ValueSchema, err = s.child("value", value); err != nil {
		return nil, err
	}
	return d, nil
}

// list serializes ns under /seg/<index>, preserving order.
func (s *serializer) list(seg string, ns []schema.Node) ([]*Descriptor, error) {
	out := make([]*Descriptor, 0, len(ns))
	if len(ns) == 0 {
		return out, nil
	}
	if !s.st.Push(seg) {
		defer s.st.Pop()
		return nil, s.fail(seg, ErrMaxDepth)
	}
	defer s.st.Pop()
	for i, n := range ns {
		d, err := s.child(strconv.Itoa(i), n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// child serializes n one path segment below the current location.
func (s *serializer) child(seg string, n schema.Node) (*Descriptor, error) {
	ok := s.st.Push(seg)
	defer s.st.Pop()
	if !ok {
		return nil, s.fail(kindOf(n), ErrMaxDepth)
	}
	return s.node(n)
}

func (s *serializer) fail(kind string, err error) error {
	return &Error{Path: s.st.Pointer(), Kind: kind, Err: err}
}

func (s *serializer) debug(msg string, keyvals ...any) {
	if s.log == nil {
		return
	}
	s.log.Debug(msg, append(keyvals, "path", s.st.Pointer())...)
}

func kindOf(n schema.Node) string {
	if n == nil {
		return ""
	}
	if isNil(n) {
		return fmt.Sprintf("nil %T", n)
	}
	return n.Kind().String()
}

// isNil reports a nil interface or an interface holding a nil pointer.
func isNil(n schema.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
