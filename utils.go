package aipstack

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

func isSigned[T constraints.Integer]() bool {
	var z T
	return z-1 < 0
}

func bitSize[T constraints.Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// minMagnitude returns |min(T)| for signed T, computed in uint64 since
// the magnitude itself overflows T.
func minMagnitude[T constraints.Integer]() uint64 {
	return uint64(1) << (bitSize[T]() - 1)
}

// maxUnsigned returns max(T). Meaningful for unsigned T only.
func maxUnsigned[T constraints.Integer]() uint64 {
	var z T
	return uint64(^z)
}

// lenUnsigned counts decimal digits; zero takes one digit.
func lenUnsigned(v uint64) int {
	n := 0
	for {
		v /= 10
		n++
		if v == 0 {
			return n
		}
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
