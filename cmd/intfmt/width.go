package main

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/dkany/aipstack"
)

type result struct {
	Text  string // canonical decimal form
	Len   int    // bytes the formatter wrote
	Bound int    // buffer size the length bound required
}

// convert decodes text at the requested width and re-renders it through
// an exactly sized buffer.
func convert(bits int, unsigned bool, text string) (result, error) {
	switch {
	case unsigned && bits == 8:
		return convertAs[uint8](text)
	case unsigned && bits == 16:
		return convertAs[uint16](text)
	case unsigned && bits == 32:
		return convertAs[uint32](text)
	case unsigned && bits == 64:
		return convertAs[uint64](text)
	case bits == 8:
		return convertAs[int8](text)
	case bits == 16:
		return convertAs[int16](text)
	case bits == 32:
		return convertAs[int32](text)
	case bits == 64:
		return convertAs[int64](text)
	default:
		return result{}, fmt.Errorf("unsupported width: %d bits", bits)
	}
}

func convertAs[T constraints.Integer](text string) (result, error) {
	v, ok := aipstack.ParseInt[T]([]byte(text))
	if !ok {
		var zero T
		return result{}, fmt.Errorf("%q is not a valid %T literal", text, zero)
	}
	buf := make([]byte, aipstack.FormatLen[T]())
	n := aipstack.FormatInt(buf, v)
	return result{Text: string(buf[:n]), Len: n, Bound: len(buf)}, nil
}
