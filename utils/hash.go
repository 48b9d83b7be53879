package utils

import "unicode/utf16"

// HashString folds s into a non-negative digest.
//
// Each UTF-16 code unit c updates the accumulator as acc*31 + c, wrapped to a
// signed 32-bit integer after every step. The absolute value of the final
// accumulator is returned, so math.MinInt32 maps to 2147483648.
func HashString(s string) uint32 {
	var acc int32
	for _, c := range utf16.Encode([]rune(s)) {
		acc = (acc << 5) - acc + int32(c)
	}
	if acc < 0 {
		return uint32(-int64(acc))
	}
	return uint32(acc)
}
