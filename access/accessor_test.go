package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michael-F-Bryan/stringly-typed/access"
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// Hand-written fixtures with the exact shape stringly-gen emits: one
// delegation branch per declared field, declaration order, no wrapping
// of delegated results.

type inner struct {
	X float64
	Y int64
}

var innerKeys = []string{"x", "y"}

func (in *inner) GetValue(keys []string) (value.Value, error) {
	if len(keys) == 0 {
		return value.Value{}, &access.CantSerializeError{TypeName: in.TypeName()}
	}

	switch keys[0] {
	case "x":
		return access.Double(in.X).GetValue(keys[1:])
	case "y":
		return access.Integer(in.Y).GetValue(keys[1:])
	default:
		return value.Value{}, &access.UnknownFieldError{Field: keys[0], ValidFields: innerKeys}
	}
}

func (in *inner) SetValue(keys []string, val value.Value) error {
	if len(keys) == 0 {
		return &access.CantSerializeError{TypeName: in.TypeName()}
	}

	switch keys[0] {
	case "x":
		return (*access.Double)(&in.X).SetValue(keys[1:], val)
	case "y":
		return (*access.Integer)(&in.Y).SetValue(keys[1:], val)
	default:
		return &access.UnknownFieldError{Field: keys[0], ValidFields: innerKeys}
	}
}

func (in *inner) TypeName() string { return "Inner" }

type outer struct {
	Inner inner
}

var outerKeys = []string{"inner"}

func (o *outer) GetValue(keys []string) (value.Value, error) {
	if len(keys) == 0 {
		return value.Value{}, &access.CantSerializeError{TypeName: o.TypeName()}
	}

	switch keys[0] {
	case "inner":
		return o.Inner.GetValue(keys[1:])
	default:
		return value.Value{}, &access.UnknownFieldError{Field: keys[0], ValidFields: outerKeys}
	}
}

func (o *outer) SetValue(keys []string, val value.Value) error {
	if len(keys) == 0 {
		return &access.CantSerializeError{TypeName: o.TypeName()}
	}

	switch keys[0] {
	case "inner":
		return o.Inner.SetValue(keys[1:], val)
	default:
		return &access.UnknownFieldError{Field: keys[0], ValidFields: outerKeys}
	}
}

func (o *outer) TypeName() string { return "Outer" }

var (
	_ access.Accessor = (*inner)(nil)
	_ access.Accessor = (*outer)(nil)
)

func testFixture() outer {
	return outer{Inner: inner{X: 3.14, Y: 42}}
}

func TestSplitKey(t *testing.T) {
	t.Parallel()

	assert.Nil(t, access.SplitKey(""))
	assert.Equal(t, []string{"inner"}, access.SplitKey("inner"))
	assert.Equal(t, []string{"inner", "y"}, access.SplitKey("inner.y"))
	assert.Equal(t, []string{"a", "", "b"}, access.SplitKey("a..b"))
}

func TestUpdateNestedField(t *testing.T) {
	t.Parallel()

	thing := testFixture()

	err := access.Set(&thing, "inner.y", value.FromInt64(-7))
	require.NoError(t, err)

	assert.Equal(t, int64(-7), thing.Inner.Y)
	assert.Equal(t, 3.14, thing.Inner.X, "sibling field must be untouched")

	got, err := access.Get(&thing, "inner.y")
	require.NoError(t, err)
	assert.Equal(t, value.FromInt64(-7), got)
}

func TestDepthInduction(t *testing.T) {
	t.Parallel()

	rests := [][]string{
		nil,
		{"x"},
		{"y"},
		{"bogus"},
		{"y", "deeper"},
	}

	for _, rest := range rests {
		thing := testFixture()

		viaOuter, errOuter := thing.GetValue(append([]string{"inner"}, rest...))
		direct, errDirect := thing.Inner.GetValue(rest)

		assert.Equal(t, direct, viaOuter)
		assert.Equal(t, errDirect, errOuter)

		setViaOuter := testFixture()
		setDirect := testFixture()

		errOuter = setViaOuter.SetValue(append([]string{"inner"}, rest...), value.FromInt64(1))
		errDirect = setDirect.Inner.SetValue(rest, value.FromInt64(1))

		assert.Equal(t, errDirect, errOuter)
		assert.Equal(t, setDirect, setViaOuter)
	}
}

func TestGetIsIdempotent(t *testing.T) {
	t.Parallel()

	thing := testFixture()

	first, err1 := access.Get(&thing, "inner.x")
	second, err2 := access.Get(&thing, "inner.x")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestUnknownField(t *testing.T) {
	t.Parallel()

	thing := testFixture()

	_, err := access.Get(&thing, "bogus")

	var unknown *access.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Field)
	assert.Equal(t, []string{"inner"}, unknown.ValidFields)
}

func TestUnknownFieldIsCaseSensitive(t *testing.T) {
	t.Parallel()

	thing := testFixture()

	_, err := access.Get(&thing, "Inner")

	var unknown *access.UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Inner", unknown.Field)
}

func TestEmptyPathOnStruct(t *testing.T) {
	t.Parallel()

	thing := outer{}

	_, err := thing.GetValue(nil)
	assert.Equal(t, &access.CantSerializeError{TypeName: "Outer"}, err)

	// Assigning a whole struct from a scalar is equally impossible.
	err = thing.SetValue(nil, value.FromInt64(1))
	assert.Equal(t, &access.CantSerializeError{TypeName: "Outer"}, err)
	assert.Equal(t, outer{}, thing)
}

func TestFailedSetLeavesStructUnchanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		val  value.Value
	}{
		{"unknown field", "bogus", value.FromInt64(1)},
		{"unknown nested field", "inner.bogus", value.FromInt64(1)},
		{"type mismatch", "inner.y", value.FromFloat64(1)},
		{"over-indexed leaf", "inner.y.deeper", value.FromInt64(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thing := testFixture()

			err := access.Set(&thing, tt.key, tt.val)

			require.Error(t, err)
			assert.Equal(t, testFixture(), thing)
		})
	}
}

func TestTypeNames(t *testing.T) {
	t.Parallel()

	thing := testFixture()

	assert.Equal(t, "Outer", thing.TypeName())
	assert.Equal(t, "Inner", thing.Inner.TypeName())
}
