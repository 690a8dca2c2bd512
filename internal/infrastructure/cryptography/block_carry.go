package cryptography

import "github.com/skiselkov/crypto-test/internal/domain/crypto"

// blockCarry holds the trailing partial block between updates. It never
// holds a full block: as soon as one is complete it is handed to the mode.
type blockCarry struct {
	buf [crypto.BlockSize]byte
	n   int
}

// feed walks src block by block, completing any carried partial block
// first. each must not retain the slice it is given.
func (c *blockCarry) feed(src []byte, each func(block []byte)) {
	if c.n > 0 {
		k := copy(c.buf[c.n:], src)
		c.n += k
		src = src[k:]
		if c.n < crypto.BlockSize {
			return
		}
		each(c.buf[:])
		c.n = 0
	}
	for len(src) >= crypto.BlockSize {
		each(src[:crypto.BlockSize])
		src = src[crypto.BlockSize:]
	}
	c.n = copy(c.buf[:], src)
}

func (c *blockCarry) pending() []byte {
	return c.buf[:c.n]
}

func (c *blockCarry) wipe() {
	c.buf = [crypto.BlockSize]byte{}
	c.n = 0
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
