package cryptography

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

const maxRounds = 14

var rcon = [10]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// KeySchedule is an expanded AES key. It is read-only after ExpandKey and
// may be shared by any number of sessions.
type KeySchedule struct {
	rounds  int
	keySize int
	rk      [maxRounds + 1][16]byte
}

// ExpandKey runs the FIPS-197 key expansion for a 16, 24 or 32 byte key.
func ExpandKey(key []byte) (*KeySchedule, error) {
	if !crypto.ValidKeySize(len(key)) {
		return nil, fmt.Errorf("%w: %d bytes", crypto.ErrInvalidKeyLength, len(key))
	}

	nk := len(key) / 4
	ks := &KeySchedule{rounds: nk + 6, keySize: len(key)}
	total := 4 * (ks.rounds + 1)

	w := make([][4]byte, total)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:])
	}
	for i := nk; i < total; i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord([4]byte{t[1], t[2], t[3], t[0]})
			t[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			t = subWord(t)
		}
		for j := range t {
			w[i][j] = w[i-nk][j] ^ t[j]
		}
	}

	for i := range w {
		copy(ks.rk[i/4][4*(i%4):], w[i][:])
		w[i] = [4]byte{}
	}
	return ks, nil
}

// Rounds returns 10, 12 or 14.
func (ks *KeySchedule) Rounds() int { return ks.rounds }

// KeySize returns the key length in bytes.
func (ks *KeySchedule) KeySize() int { return ks.keySize }

// Wipe zeroes the round keys. The schedule is unusable afterwards.
func (ks *KeySchedule) Wipe() {
	for i := range ks.rk {
		ks.rk[i] = [16]byte{}
	}
	ks.rounds = 0
}

// EncryptBlock encrypts the first 16 bytes of src into dst. dst and src may overlap entirely.
func (ks *KeySchedule) EncryptBlock(dst, src []byte) {
	var s [16]byte
	copy(s[:], src[:crypto.BlockSize])

	addRoundKey(&s, &ks.rk[0])
	for r := 1; r < ks.rounds; r++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, &ks.rk[r])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, &ks.rk[ks.rounds])

	copy(dst[:crypto.BlockSize], s[:])
}

// DecryptBlock decrypts the first 16 bytes of src into dst. dst and src may overlap entirely.
func (ks *KeySchedule) DecryptBlock(dst, src []byte) {
	var s [16]byte
	copy(s[:], src[:crypto.BlockSize])

	addRoundKey(&s, &ks.rk[ks.rounds])
	for r := ks.rounds - 1; r > 0; r-- {
		invShiftRows(&s)
		invSubBytes(&s)
		addRoundKey(&s, &ks.rk[r])
		invMixColumns(&s)
	}
	invShiftRows(&s)
	invSubBytes(&s)
	addRoundKey(&s, &ks.rk[0])

	copy(dst[:crypto.BlockSize], s[:])
}

// The state is column-major: s[r+4c] is row r of column c.

func addRoundKey(s, k *[16]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func shiftRows(s *[16]byte) {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

func invShiftRows(s *[16]byte) {
	t := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r+4*((c+r)%4)] = t[r+4*c]
		}
	}
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[c] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// invMixColumns folds the inverse matrix into a preprocessing step followed by mixColumns.
func invMixColumns(s *[16]byte) {
	for c := 0; c < 16; c += 4 {
		u := xtime(xtime(s[c] ^ s[c+2]))
		v := xtime(xtime(s[c+1] ^ s[c+3]))
		s[c] ^= u
		s[c+1] ^= v
		s[c+2] ^= u
		s[c+3] ^= v
	}
	mixColumns(s)
}
