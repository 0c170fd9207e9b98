package leapdb

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// Kind discriminates element variants. Declaration order is the sort
// order across kinds: Least below everything, then booleans, numbers,
// strings, and Greatest above everything.
type Kind uint8

const (
	KindLeast Kind = iota
	KindBool
	KindNumber
	KindString
	KindGreatest
)

// Element is one position of a composite key: a boolean, a number, or a
// string, or one of the two bound sentinels. The zero value is Least.
//
// NaN numbers have no place in the total order and must not be stored.
type Element struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

var (
	// Least sorts below every element and equals itself.
	Least = Element{kind: KindLeast}

	// Greatest sorts above every element and equals itself.
	Greatest = Element{kind: KindGreatest}
)

// Bool returns a boolean element.
func Bool(v bool) Element { return Element{kind: KindBool, b: v} }

// Number returns a numeric element.
func Number(v float64) Element { return Element{kind: KindNumber, n: v} }

// String returns a string element.
func String(v string) Element { return Element{kind: KindString, s: v} }

// Kind returns the element's kind tag.
func (e Element) Kind() Kind { return e.kind }

// Value returns the underlying Go value: bool, float64, string, or nil
// for the sentinels.
func (e Element) Value() any {
	switch e.kind {
	case KindBool:
		return e.b
	case KindNumber:
		return e.n
	case KindString:
		return e.s
	}
	return nil
}

// Compare returns -1, 0, or 1. Elements of different kinds order by
// kind tag; within a kind, natural order.
func (e Element) Compare(o Element) int {
	if e == o {
		return 0
	}
	if e.kind != o.kind {
		if e.kind < o.kind {
			return -1
		}
		return 1
	}
	switch e.kind {
	case KindBool:
		// e != o here, so exactly one of them is true.
		if !e.b {
			return -1
		}
		return 1
	case KindNumber:
		if e.n < o.n {
			return -1
		}
		if e.n > o.n {
			return 1
		}
		return 0
	case KindString:
		return strings.Compare(e.s, o.s)
	}
	return 0
}

func (e Element) String() string {
	switch e.kind {
	case KindLeast:
		return "<least>"
	case KindGreatest:
		return "<greatest>"
	case KindBool:
		return strconv.FormatBool(e.b)
	case KindNumber:
		return strconv.FormatFloat(e.n, 'g', -1, 64)
	case KindString:
		return strconv.Quote(e.s)
	}
	return "<invalid>"
}

// appendBytes encodes the element for hashing. Not a wire format.
func (e Element) appendBytes(dst []byte) []byte {
	dst = append(dst, byte(e.kind))
	switch e.kind {
	case KindBool:
		if e.b {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	case KindNumber:
		dst = binary.BigEndian.AppendUint64(dst, math.Float64bits(e.n))
	case KindString:
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(e.s)))
		dst = append(dst, e.s...)
	}
	return dst
}
