package objectid

// CommonHexLen returns the number of leading hex digits shared by a and b.
//
// The count is nibble-granular: two bytes that agree only on the high nibble
// contribute one digit. The result is capped at the digit length of the
// shorter operand.
func CommonHexLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] == b[i] {
			continue
		}
		if a[i]>>4 == b[i]>>4 {
			return i*2 + 1
		}
		return i * 2
	}
	return n * 2
}
