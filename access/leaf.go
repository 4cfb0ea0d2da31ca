package access

import (
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

// The three leaf types terminate path recursion. They are defined types
// over the native primitives so that generated code can address a plain
// struct field in place, e.g. (*access.Integer)(&probe.Count); the same
// conversion is legal for any named field type whose underlying type is
// int64, float64 or string.

type (
	Integer int64
	Double  float64
	String  string
)

// foundTag names the incoming value's variant for TypeError payloads.
// The zero Value holds no variant and must be reported, not panicked on.
func foundTag(val value.Value) string {
	if val.Kind() == 0 {
		return value.InvalidType
	}

	return val.TypeName()
}

func (i Integer) GetValue(keys []string) (value.Value, error) {
	if len(keys) > 0 {
		return value.Value{}, &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	return value.FromInt64(int64(i)), nil
}

func (i *Integer) SetValue(keys []string, val value.Value) error {
	if len(keys) > 0 {
		return &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	v, ok := val.Int64()
	if !ok {
		return &TypeError{Expected: i.TypeName(), Found: foundTag(val)}
	}

	*i = Integer(v)

	return nil
}

func (Integer) TypeName() string { return value.IntegerType }

func (d Double) GetValue(keys []string) (value.Value, error) {
	if len(keys) > 0 {
		return value.Value{}, &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	return value.FromFloat64(float64(d)), nil
}

func (d *Double) SetValue(keys []string, val value.Value) error {
	if len(keys) > 0 {
		return &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	v, ok := val.Float64()
	if !ok {
		return &TypeError{Expected: d.TypeName(), Found: foundTag(val)}
	}

	*d = Double(v)

	return nil
}

func (Double) TypeName() string { return value.DoubleType }

func (s String) GetValue(keys []string) (value.Value, error) {
	if len(keys) > 0 {
		return value.Value{}, &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	return value.FromString(string(s)), nil
}

func (s *String) SetValue(keys []string, val value.Value) error {
	if len(keys) > 0 {
		return &TooManyKeysError{ElementsRemaining: len(keys)}
	}

	v, ok := val.Str()
	if !ok {
		return &TypeError{Expected: s.TypeName(), Found: foundTag(val)}
	}

	*s = String(v)

	return nil
}

func (String) TypeName() string { return value.StringType }

var (
	_ Accessor = (*Integer)(nil)
	_ Accessor = (*Double)(nil)
	_ Accessor = (*String)(nil)
)
