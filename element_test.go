package leapdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleElements covers every kind plus both sentinels, listed in
// ascending order.
func sampleElements() []Element {
	return []Element{
		Least,
		Bool(false),
		Bool(true),
		Number(-12.5),
		Number(0),
		Number(0.25),
		Number(7),
		Number(1e9),
		String(""),
		String("a"),
		String("ab"),
		String("b"),
		Greatest,
	}
}

func TestElementOrderAcrossKinds(t *testing.T) {
	t.Parallel()

	elems := sampleElements()
	for i := range elems {
		for j := range elems {
			got := elems[i].Compare(elems[j])
			switch {
			case i < j:
				assert.Negative(t, got, "%v vs %v", elems[i], elems[j])
			case i > j:
				assert.Positive(t, got, "%v vs %v", elems[i], elems[j])
			default:
				assert.Zero(t, got, "%v vs itself", elems[i])
			}
		}
	}
}

func TestElementSentinels(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Least.Compare(Least))
	assert.Zero(t, Greatest.Compare(Greatest))

	for _, e := range sampleElements() {
		if e != Least {
			assert.Negative(t, Least.Compare(e))
			assert.Positive(t, e.Compare(Least))
		}
		if e != Greatest {
			assert.Positive(t, Greatest.Compare(e))
			assert.Negative(t, e.Compare(Greatest))
		}
	}
}

func TestElementOrderLaws(t *testing.T) {
	t.Parallel()

	elems := sampleElements()

	// Reflexivity and totality.
	for _, a := range elems {
		assert.Zero(t, a.Compare(a))
	}
	for _, a := range elems {
		for _, b := range elems {
			lt := a.Compare(b) < 0
			eq := a.Compare(b) == 0
			gt := a.Compare(b) > 0
			count := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					count++
				}
			}
			assert.Equal(t, 1, count, "exactly one of <,=,> for %v vs %v", a, b)

			// Anti-symmetry.
			assert.Equal(t, -sign(a.Compare(b)), sign(b.Compare(a)))
		}
	}

	// Transitivity.
	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
					assert.LessOrEqual(t, a.Compare(c), 0)
				}
				if a.Compare(b) < 0 && b.Compare(c) < 0 {
					assert.Negative(t, a.Compare(c))
				}
			}
		}
	}
}

func TestElementValueRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, Bool(true).Value())
	assert.Equal(t, false, Bool(false).Value())
	assert.Equal(t, 7.5, Number(7.5).Value())
	assert.Equal(t, "x", String("x").Value())
	assert.Nil(t, Least.Value())
	assert.Nil(t, Greatest.Value())

	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.Equal(t, KindNumber, Number(1).Kind())
	assert.Equal(t, KindString, String("").Kind())
}

func TestKeyBounds(t *testing.T) {
	t.Parallel()

	keys := []Key{
		{Bool(false), Number(1)},
		{Number(3), String("q")},
		{String("a"), String("z")},
	}
	least := LeastKey(2)
	greatest := GreatestKey(2)

	for _, k := range keys {
		assert.Negative(t, least.Compare(k))
		assert.Negative(t, k.Compare(greatest))
		assert.Zero(t, k.Compare(k))
	}
	assert.Zero(t, least.Compare(LeastKey(2)))
	assert.Zero(t, greatest.Compare(GreatestKey(2)))
}

func TestKeyCompareLexicographic(t *testing.T) {
	t.Parallel()

	a := Key{String("a"), String("z")}
	b := Key{String("b"), String("a")}
	assert.Negative(t, a.Compare(b), "first position dominates")

	c := Key{String("a"), String("a")}
	assert.Positive(t, a.Compare(c), "ties broken by later positions")
}

func TestKeyClone(t *testing.T) {
	t.Parallel()

	k := Key{String("a"), Number(1)}
	c := k.Clone()
	require.True(t, k.Equal(c))

	c[0] = String("b")
	assert.Equal(t, String("a"), k[0], "clone must not alias")

	assert.Nil(t, Key(nil).Clone())
}

func TestPrefixNotEqual(t *testing.T) {
	t.Parallel()

	a := Key{String("a"), String("b"), String("c")}
	b := Key{String("a"), String("b"), String("d")}

	assert.False(t, PrefixNotEqual(a, b, 0))
	assert.False(t, PrefixNotEqual(a, b, 2))
	assert.True(t, PrefixNotEqual(a, b, 3))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
