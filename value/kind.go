package value

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInteger
	KindDouble
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Type tag constants as they appear in error payloads and TypeName results.
const (
	IntegerType = "integer"
	DoubleType  = "double"
	StringType  = "string"

	// InvalidType tags the zero Value, which holds no variant.
	InvalidType = "invalid"
)

// TypeName returns the wire-level type tag for the kind.
// The invalid zero kind has no tag and panics.
func (k KindEnum) TypeName() string {
	switch k {
	default:
		panic("no type tag for kind: " + k.String())
	case KindInteger:
		return IntegerType
	case KindDouble:
		return DoubleType
	case KindString:
		return StringType
	}
}
