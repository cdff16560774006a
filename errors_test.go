package skemadesc_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/skemadesc"
	d "github.com/reoring/skemadesc/dsl"
	"github.com/reoring/skemadesc/schema"
)

// alienNode is a node kind this package does not know.
type alienNode struct{}

func (alienNode) Kind() schema.Kind { return schema.Kind(999) }
func (alienNode) Describe() string  { return "" }

func TestSerialize_UnrecognizedKind(t *testing.T) {
	t.Run("Should reject a foreign node at the root", func(t *testing.T) {
		desc, err := skemadesc.Serialize(alienNode{})

		assert.Nil(t, desc)
		require.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/", e.Path)
		assert.Contains(t, e.Kind, "kind(999)")
	})

	t.Run("Should report the path of a nested foreign node", func(t *testing.T) {
		n := d.Object(d.Field("list", d.Array(d.Union(d.String(), alienNode{}))))

		_, err := skemadesc.Serialize(n)

		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
		assert.Equal(t, "/properties/list/element/options/1", e.Path)
	})

	t.Run("Should reject a primitive with a composite kind", func(t *testing.T) {
		_, err := skemadesc.Serialize(&schema.Primitive{Of: schema.KindObject})
		assert.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
	})

	t.Run("Should reject a missing child", func(t *testing.T) {
		_, err := skemadesc.Serialize(d.Optional(nil))
		assert.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
	})

	t.Run("Should escape property names in the path", func(t *testing.T) {
		_, err := skemadesc.Serialize(d.Object(d.Field("a/b~c", alienNode{})))
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/properties/a~1b~0c", e.Path)
	})
}

func TestSerialize_Lazy(t *testing.T) {
	t.Run("Should report a self-referential schema as cyclic", func(t *testing.T) {
		var category *schema.Object
		category = d.Object(
			d.Field("name", d.String()),
			d.Field("children", d.Array(d.Lazy(func() schema.Node { return category }))),
		)

		desc, err := skemadesc.Serialize(category)

		assert.Nil(t, desc)
		require.ErrorIs(t, err, skemadesc.ErrCyclicSchema)
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/properties/children/element/properties/children/element", e.Path)
		assert.Equal(t, "lazy", e.Kind)
	})

	t.Run("Should allow the same lazy node on sibling branches", func(t *testing.T) {
		shared := d.Lazy(func() schema.Node { return d.String() })
		got := mustJSON(t, d.Tuple(shared, shared))
		assert.JSONEq(t, `{"type":"tuple","items":[{"type":"string"},{"type":"string"}]}`, got)
	})

	t.Run("Should call the getter on every serialization", func(t *testing.T) {
		calls := 0
		n := d.Lazy(func() schema.Node {
			calls++
			return d.Boolean()
		})
		mustJSON(t, n)
		mustJSON(t, n)
		assert.Equal(t, 2, calls)
	})
}

func TestSerializeWith_MaxDepth(t *testing.T) {
	n := d.Array(d.Array(d.String()))

	t.Run("Should fail below the bound", func(t *testing.T) {
		_, err := skemadesc.SerializeWith(n, skemadesc.Options{MaxDepth: 1})
		require.ErrorIs(t, err, skemadesc.ErrMaxDepth)
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/element/element", e.Path)
	})

	t.Run("Should succeed within the bound", func(t *testing.T) {
		desc, err := skemadesc.SerializeWith(n, skemadesc.Options{MaxDepth: 2})
		require.NoError(t, err)
		assert.Equal(t, skemadesc.TypeString, desc.Element.Element.Type)
	})

	t.Run("Should count object property segments", func(t *testing.T) {
		_, err := skemadesc.SerializeWith(d.Object(d.Field("a", d.String())), skemadesc.Options{MaxDepth: 1})
		assert.ErrorIs(t, err, skemadesc.ErrMaxDepth)
	})
}

func TestSerializeWith_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := skemadesc.SerializeWith(
		d.Object(d.Field("slug", d.String(d.Trim(), d.Min(1))), d.Field("c", d.NativeEnum(nil))),
		skemadesc.Options{Logger: logger},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "check kind ignored")
	assert.Contains(t, out, "trim")
	assert.Contains(t, out, "/properties/slug")
	assert.Contains(t, out, "native enum members are not described")
}

func TestMustSerialize(t *testing.T) {
	assert.Equal(t, skemadesc.TypeBoolean, skemadesc.MustSerialize(d.Boolean()).Type)
	assert.Panics(t, func() { skemadesc.MustSerialize(alienNode{}) })
}

func TestError_Message(t *testing.T) {
	e := &skemadesc.Error{Path: "/items/0", Kind: "lazy", Err: skemadesc.ErrCyclicSchema}
	assert.Equal(t, "skemadesc: cyclic schema at /items/0 (lazy)", e.Error())
	assert.True(t, errors.Is(e, skemadesc.ErrCyclicSchema))
}

func TestSerialize_NilPointerChild(t *testing.T) {
	t.Run("Should reject a nil tuple as function args", func(t *testing.T) {
		n := &schema.Function{Args: (*schema.Tuple)(nil), Returns: d.Void()}

		desc, err := skemadesc.Serialize(n)

		assert.Nil(t, desc)
		require.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/args", e.Path)
		assert.Equal(t, "nil *schema.Tuple", e.Kind)
	})

	t.Run("Should reject nil pointers of every node type", func(t *testing.T) {
		for _, n := range []schema.Node{
			(*schema.String)(nil),
			(*schema.Primitive)(nil),
			(*schema.Object)(nil),
			(*schema.Lazy)(nil),
			(*schema.Optional)(nil),
		} {
			assert.NotPanics(t, func() {
				_, err := skemadesc.Serialize(d.Array(n))
				assert.ErrorIs(t, err, skemadesc.ErrUnrecognizedKind)
			})
		}
	})

	t.Run("Should report max depth on a nil child without panicking", func(t *testing.T) {
		n := d.Array(d.Array((*schema.Primitive)(nil)))
		_, err := skemadesc.SerializeWith(n, skemadesc.Options{MaxDepth: 1})
		require.ErrorIs(t, err, skemadesc.ErrMaxDepth)
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "/element/element", e.Path)
		assert.Equal(t, "nil *schema.Primitive", e.Kind)
	})

	t.Run("Should describe a function built with nil args", func(t *testing.T) {
		got := mustJSON(t, d.Function(nil, d.Void()))
		assert.JSONEq(t, `{"type":"function","args":{"type":"tuple","items":[]},"returns":{"type":"void"}}`, got)
	})
}

func TestSerializeWith_MaxDepthEmptyContainers(t *testing.T) {
	for name, n := range map[string]schema.Node{
		"tuple":  d.Array(d.Tuple()),
		"object": d.Array(d.Object()),
		"union":  d.Array(d.Union()),
	} {
		t.Run("Should not count an empty "+name+" as nesting", func(t *testing.T) {
			desc, err := skemadesc.SerializeWith(n, skemadesc.Options{MaxDepth: 1})
			require.NoError(t, err)
			assert.NotNil(t, desc.Element)
		})
	}

	t.Run("Should still count a non-empty tuple", func(t *testing.T) {
		_, err := skemadesc.SerializeWith(d.Array(d.Tuple(d.String())), skemadesc.Options{MaxDepth: 1})
		e, ok := skemadesc.AsError(err)
		require.True(t, ok)
		assert.ErrorIs(t, err, skemadesc.ErrMaxDepth)
		assert.Equal(t, "/element/items", e.Path)
	})
}

func TestSerialize_IdentityCycleOnly(t *testing.T) {
	t.Run("Should bound a getter that builds a new lazy node per call with MaxDepth", func(t *testing.T) {
		var tree func() schema.Node
		tree = func() schema.Node { return d.Object(d.Field("next", d.Lazy(tree))) }

		_, err := skemadesc.SerializeWith(tree(), skemadesc.Options{MaxDepth: 20})

		assert.ErrorIs(t, err, skemadesc.ErrMaxDepth)
		assert.NotErrorIs(t, err, skemadesc.ErrCyclicSchema)
	})
}
