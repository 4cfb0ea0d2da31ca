package access_test

import (
	"testing"

	"github.com/Michael-F-Bryan/stringly-typed/access"
	"github.com/Michael-F-Bryan/stringly-typed/value"
)

func BenchmarkStaticAssign(b *testing.B) {
	original := testFixture()

	for i := 0; i < b.N; i++ {
		updated := original
		updated.Inner.Y = -7
		sinkOuter = updated
	}
}

func BenchmarkStringlyUpdate(b *testing.B) {
	original := testFixture()

	for i := 0; i < b.N; i++ {
		updated := original
		if err := access.Set(&updated, "inner.y", value.FromInt64(-7)); err != nil {
			b.Fatal(err)
		}
		sinkOuter = updated
	}
}

func BenchmarkStringlyGet(b *testing.B) {
	original := testFixture()

	for i := 0; i < b.N; i++ {
		got, err := access.Get(&original, "inner.x")
		if err != nil {
			b.Fatal(err)
		}
		sinkValue = got
	}
}

var (
	sinkOuter outer
	sinkValue value.Value
)
