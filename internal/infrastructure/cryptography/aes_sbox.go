package cryptography

// The S-box is evaluated arithmetically on eight bytes packed into a uint64:
// SubBytes(x) = A(x^254) in GF(2^8) mod x^8+x^4+x^3+x+1, where A is the
// FIPS-197 affine map. Every step is shifts, masks and xors, so no memory
// access depends on secret bytes.

const (
	laneLSB = 0x0101010101010101
	laneMSB = 0x8080808080808080
)

// lanes replicates b into every byte of a uint64.
func lanes(b byte) uint64 {
	return uint64(b) * laneLSB
}

// gfMul64 multiplies the eight byte lanes of a and b pairwise in GF(2^8).
func gfMul64(a, b uint64) uint64 {
	var p uint64
	for i := 0; i < 8; i++ {
		p ^= a & ((b & laneLSB) * 0xff)
		carry := (a & laneMSB) >> 7
		a = ((a << 1) &^ laneLSB) ^ (carry * 0x1b)
		b >>= 1
	}
	return p
}

// gfInv64 raises every lane to the 254th power, which is the field inverse
// for nonzero lanes and maps zero to zero.
func gfInv64(x uint64) uint64 {
	x2 := gfMul64(x, x)
	x3 := gfMul64(x2, x)
	x6 := gfMul64(x3, x3)
	x12 := gfMul64(x6, x6)
	x15 := gfMul64(x12, x3)
	x30 := gfMul64(x15, x15)
	x60 := gfMul64(x30, x30)
	x120 := gfMul64(x60, x60)
	x240 := gfMul64(x120, x120)
	x252 := gfMul64(x240, x12)
	return gfMul64(x252, x2)
}

// rotl64 rotates each byte lane left by n bits (0 < n < 8).
func rotl64(x uint64, n uint) uint64 {
	hi := lanes(byte(0xff << n))
	lo := lanes(byte(0xff >> (8 - n)))
	return ((x << n) & hi) | ((x >> (8 - n)) & lo)
}

func affine64(x uint64) uint64 {
	return x ^ rotl64(x, 1) ^ rotl64(x, 2) ^ rotl64(x, 3) ^ rotl64(x, 4) ^ lanes(0x63)
}

func invAffine64(x uint64) uint64 {
	return rotl64(x, 1) ^ rotl64(x, 3) ^ rotl64(x, 6) ^ lanes(0x05)
}

func sbox64(x uint64) uint64 {
	return affine64(gfInv64(x))
}

func invSbox64(x uint64) uint64 {
	return gfInv64(invAffine64(x))
}

func pack64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func unpack64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func subBytes(s *[16]byte) {
	unpack64(s[0:8], sbox64(pack64(s[0:8])))
	unpack64(s[8:16], sbox64(pack64(s[8:16])))
}

func invSubBytes(s *[16]byte) {
	unpack64(s[0:8], invSbox64(pack64(s[0:8])))
	unpack64(s[8:16], invSbox64(pack64(s[8:16])))
}

// subWord applies the S-box to the four bytes of a key schedule word.
func subWord(w [4]byte) [4]byte {
	v := uint64(w[0]) | uint64(w[1])<<8 | uint64(w[2])<<16 | uint64(w[3])<<24
	v = sbox64(v)
	return [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// xtime multiplies by x in GF(2^8) without branching on b.
func xtime(b byte) byte {
	return b<<1 ^ (0x1b & -(b >> 7))
}
