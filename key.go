package leapdb

import (
	"strings"

	"leapdb/internal/algo"
)

// Key is a fixed-arity vector of elements. Every key stored in one tree
// shares the tree's arity; comparison is lexicographic over element
// comparison. Comparing keys of different arity is a programmer error.
type Key []Element

// LeastKey returns the arity-n key filled with the Least sentinel.
func LeastKey(n int) Key {
	k := make(Key, n)
	for i := range k {
		k[i] = Least
	}
	return k
}

// GreatestKey returns the arity-n key filled with the Greatest sentinel.
func GreatestKey(n int) Key {
	k := make(Key, n)
	for i := range k {
		k[i] = Greatest
	}
	return k
}

// Compare returns -1, 0, or 1.
func (k Key) Compare(o Key) int {
	for i := range k {
		if c := k[i].Compare(o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether k and o hold equal elements.
func (k Key) Equal(o Key) bool { return k.Compare(o) == 0 }

// Clone returns a copy of k that is safe to retain across engine calls.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	out := make(Key, len(k))
	copy(out, k)
	return out
}

// PrefixNotEqual reports whether the first n elements of a and b differ
// in at least one position.
func PrefixNotEqual(a, b Key, n int) bool {
	for i := 0; i < n; i++ {
		if a[i].Compare(b[i]) != 0 {
			return true
		}
	}
	return false
}

func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range k {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// appendBytes encodes the key for hashing. Not a wire format.
func (k Key) appendBytes(dst []byte) []byte {
	for _, e := range k {
		dst = e.appendBytes(dst)
	}
	return dst
}

// findGTE returns the index of the first key in keys that is >= key.
func findGTE(keys []Key, key Key) int {
	return algo.FindGTE(keys, key, Key.Compare)
}

// findGT returns the index of the first key in keys that is > key.
func findGT(keys []Key, key Key) int {
	return algo.FindGT(keys, key, Key.Compare)
}
