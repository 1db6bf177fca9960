package common

// WipeByteArray zeroes b in place. Callers use it to scrub passwords once
// they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
