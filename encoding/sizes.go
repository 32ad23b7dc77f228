package encoding

// Worst-case output sizing for callers that pre-allocate destination
// buffers. A variable-length integer spans at most 9 nibbles, so a run of
// them costs at most 5 bytes per value once the rolling half-byte carry
// is accounted for.

// LinearMaxBytes returns the worst-case encoded size of count values
// under the linear codec: two 4-byte fixed-point words plus at most
// 5 bytes per residual.
func LinearMaxBytes(count int) int {
	if count <= 2 {
		return 4 * count
	}

	return 8 + 5*(count-2)
}

// CountMaxBytes returns the worst-case encoded size of count values under
// the count codec.
func CountMaxBytes(count int) int {
	return 5 * count
}

// LogFloatBytes returns the exact encoded size of count values under the
// two-byte float codec.
func LogFloatBytes(count int) int {
	return 2 * count
}

// NibbleMaxValues returns the maximum number of values a nibble-codec
// payload of byteCount bytes can decode to: two nibbles per byte, one
// value per nibble in the densest case (a run of single-nibble zeros).
func NibbleMaxValues(byteCount int) int {
	return 2 * byteCount
}
