package hashing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasher_FieldBoundaries(t *testing.T) {
	a := New("T").String("ab").String("c").Sum64()
	b := New("T").String("a").String("bc").Sum64()
	require.NotEqual(t, a, b)
}

func TestHasher_TypeNameSeeds(t *testing.T) {
	require.NotEqual(t, New("Ref").String("x").Sum64(), New("Error").String("x").Sum64())
}

func TestHasher_AbsentNullAndEmptyListDiffer(t *testing.T) {
	absent := New("T").Absent().Sum64()
	null := New("T").Null().Sum64()
	empty := New("T").List(0).Sum64()
	require.NotEqual(t, absent, null)
	require.NotEqual(t, absent, empty)
	require.NotEqual(t, null, empty)
}

func TestHasher_AnyIgnoresMapOrder(t *testing.T) {
	m1 := map[string]any{"a": 1.0, "b": []any{"x", true, nil}}
	m2 := map[string]any{"b": []any{"x", true, nil}, "a": 1.0}
	require.Equal(t, New("T").Any(m1).Sum64(), New("T").Any(m2).Sum64())

	m3 := map[string]any{"a": 2.0, "b": []any{"x", true, nil}}
	require.NotEqual(t, New("T").Any(m1).Sum64(), New("T").Any(m3).Sum64())
}

func TestHasher_SignedZero(t *testing.T) {
	require.Equal(t, New("T").Float(0).Sum64(), New("T").Float(math.Copysign(0, -1)).Sum64())
}
