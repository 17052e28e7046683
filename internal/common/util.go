// Package common provides small helpers shared across layers.
package common

// WipeByteArray overwrites the buffer with zeros. Used to scrub passwords
// from memory once they have been hashed or verified.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
