package aipstack

// intSize is the width of int and uint on the target, 32 or 64.
const intSize = 32 << (^uint(0) >> 63)

// Maximum formatted lengths per concrete width, usable where a constant
// is required (array sizes). FormatLen yields the same values; the two
// are pinned against each other in tests.
const (
	FormatLenInt8  = 4  // "-128"
	FormatLenInt16 = 6  // "-32768"
	FormatLenInt32 = 11 // "-2147483648"
	FormatLenInt64 = 20 // "-9223372036854775808"

	FormatLenUint8  = 3  // "255"
	FormatLenUint16 = 5  // "65535"
	FormatLenUint32 = 10 // "4294967295"
	FormatLenUint64 = 20 // "18446744073709551615"

	FormatLenInt  = FormatLenInt32 + 9*(intSize/64)
	FormatLenUint = FormatLenUint32 + 10*(intSize/64)
)
