package cryptography

import (
	"encoding/binary"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// fieldElement is a GF(2^128) element in GCM bit order: the most
// significant bit of hi is the coefficient of x^0.
type fieldElement struct {
	hi, lo uint64
}

// gcmReduction is x^128 reduced: x^7+x^2+x+1 in reflected order.
const gcmReduction = 0xe100000000000000

func loadElement(b []byte) fieldElement {
	return fieldElement{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

func (x fieldElement) store(b []byte) {
	binary.BigEndian.PutUint64(b[0:8], x.hi)
	binary.BigEndian.PutUint64(b[8:16], x.lo)
}

func (x fieldElement) xor(y fieldElement) fieldElement {
	return fieldElement{hi: x.hi ^ y.hi, lo: x.lo ^ y.lo}
}

// gfMul is the bitwise right-shift multiplication of NIST SP 800-38D
// (algorithm 1). Every iteration does the same work whatever the bits of x
// and y are.
func gfMul(x, y fieldElement) fieldElement {
	var z fieldElement
	v := y
	for _, word := range [2]uint64{x.hi, x.lo} {
		for i := 63; i >= 0; i-- {
			mask := -((word >> uint(i)) & 1)
			z.hi ^= v.hi & mask
			z.lo ^= v.lo & mask

			lsb := v.lo & 1
			v.lo = v.lo>>1 | v.hi<<63
			v.hi = v.hi>>1 ^ (gcmReduction & -lsb)
		}
	}
	return z
}

// ghash accumulates Y = (Y xor X) * H over 16-byte blocks.
type ghash struct {
	h fieldElement
	y fieldElement
}

func newGHASH(h []byte) ghash {
	return ghash{h: loadElement(h)}
}

func (g *ghash) block(b []byte) {
	g.y = gfMul(g.y.xor(loadElement(b)), g.h)
}

// update hashes data, zero-padding a trailing partial block.
func (g *ghash) update(data []byte) {
	for len(data) >= crypto.BlockSize {
		g.block(data[:crypto.BlockSize])
		data = data[crypto.BlockSize:]
	}
	if len(data) > 0 {
		var pad [crypto.BlockSize]byte
		copy(pad[:], data)
		g.block(pad[:])
		zeroBytes(pad[:])
	}
}

// lengths hashes the final [len(A)]64 || [len(C)]64 block, both in bits.
func (g *ghash) lengths(aadBits, dataBits uint64) {
	var b [crypto.BlockSize]byte
	binary.BigEndian.PutUint64(b[0:8], aadBits)
	binary.BigEndian.PutUint64(b[8:16], dataBits)
	g.block(b[:])
}

func (g *ghash) sum(dst []byte) {
	g.y.store(dst)
}

func (g *ghash) reset() {
	g.y = fieldElement{}
}

func (g *ghash) wipe() {
	g.h = fieldElement{}
	g.y = fieldElement{}
}
