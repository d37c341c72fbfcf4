// Package bitflag provides helpers for integer-typed flag sets, the
// kind usually declared as a defined type with shifted constants.
package bitflag

import "golang.org/x/exp/constraints"

// Has reports whether every bit of flags is set in v.
func Has[F constraints.Integer](v, flags F) bool {
	return v&flags == flags
}

// HasAny reports whether at least one bit of flags is set in v.
func HasAny[F constraints.Integer](v, flags F) bool {
	return v&flags != 0
}

// With returns v with all bits of flags set.
func With[F constraints.Integer](v, flags F) F {
	return v | flags
}

// Without returns v with all bits of flags cleared.
func Without[F constraints.Integer](v, flags F) F {
	return v &^ flags
}

// Toggle returns v with all bits of flags inverted.
func Toggle[F constraints.Integer](v, flags F) F {
	return v ^ flags
}

// IsZero reports whether v has no flag set.
func IsZero[F constraints.Integer](v F) bool {
	return v == 0
}
