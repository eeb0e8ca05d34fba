package cryptox

// Wipe overwrites b with zeros. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
