// Package aipstack provides allocation-free conversion between machine
// integers and their canonical decimal text representation: a formatter
// writing into a caller-supplied buffer and a parser that only accepts
// exact, in-range decimal literals.
package aipstack

import (
	"golang.org/x/exp/constraints"
)

// FormatLen returns the maximum number of bytes FormatInt can write for
// values of type T, including the minus sign for signed types. The bound
// is tight: the extreme value of T needs exactly this many bytes.
//
// For buffer declarations that need a constant, the per-width
// FormatLenInt8 .. FormatLenUint64 constants carry the same values.
func FormatLen[T constraints.Integer]() int {
	if isSigned[T]() {
		return 1 + lenUnsigned(minMagnitude[T]())
	}
	return lenUnsigned(maxUnsigned[T]())
}

// FormatInt writes the decimal representation of v at the start of dst
// and returns the number of bytes written, so dst[:n] is the result.
// dst must provide at least FormatLen[T]() bytes; an undersized buffer
// is a caller error. The output has no redundant leading zeros and a
// leading '-' exactly when v is negative.
func FormatInt[T constraints.Integer](dst []byte, v T) int {
	neg := v < 0
	u := uint64(v)
	if neg {
		// Unsigned negation, exact even for the minimum value whose
		// magnitude does not fit in T.
		u = -u
	}

	n := 0
	for {
		dst[n] = '0' + byte(u%10)
		n++
		u /= 10
		if u == 0 {
			break
		}
	}
	if neg {
		dst[n] = '-'
		n++
	}
	reverse(dst[:n])
	return n
}

// AppendInt appends the decimal representation of v to dst and returns
// the extended slice. It allocates only if dst lacks capacity.
func AppendInt[T constraints.Integer](dst []byte, v T) []byte {
	var buf [FormatLenUint64]byte
	n := FormatInt(buf[:], v)
	return append(dst, buf[:n]...)
}

// ParseInt decodes b as a decimal literal of type T: an optional '-'
// (signed T only) followed by one or more ASCII digits. Leading zeros
// are accepted. Everything else is rejected: empty input, a bare sign,
// '+', whitespace, non-digit bytes and values outside T's range. On
// rejection it returns the zero value and false. It never panics and
// never allocates.
func ParseInt[T constraints.Integer](b []byte) (T, bool) {
	if len(b) == 0 {
		return 0, false
	}

	neg := false
	if isSigned[T]() && b[0] == '-' {
		neg = true
		b = b[1:]
		if len(b) == 0 {
			return 0, false
		}
	}

	// Admissible magnitude: |min| for negative literals, max otherwise.
	var limit uint64
	switch {
	case neg:
		limit = minMagnitude[T]()
	case isSigned[T]():
		limit = minMagnitude[T]() - 1
	default:
		limit = maxUnsigned[T]()
	}
	limit10 := limit / 10

	var u uint64
	for _, c := range b {
		d := c - '0'
		if d > 9 {
			return 0, false
		}
		if u > limit10 {
			return 0, false
		}
		u *= 10
		if uint64(d) > limit-u {
			return 0, false
		}
		u += uint64(d)
	}

	if neg {
		if u == minMagnitude[T]() {
			// |min| is not representable in T, so negate in two steps.
			return -T(u-1) - 1, true
		}
		return -T(u), true
	}
	return T(u), true
}
