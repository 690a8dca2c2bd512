package cryptography

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

type cbcMode struct {
	ks    *KeySchedule
	dir   crypto.Direction
	iv    [crypto.BlockSize]byte
	carry blockCarry
}

func newCBC(ks *KeySchedule, dir crypto.Direction, params crypto.Params) (*cbcMode, error) {
	p, ok := params.(*crypto.CBCParams)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: CBC requires *CBCParams", crypto.ErrInvalidParameter)
	}
	if len(p.IV) != crypto.BlockSize {
		return nil, fmt.Errorf("%w: CBC IV must be %d bytes, got %d", crypto.ErrInvalidIVLength, crypto.BlockSize, len(p.IV))
	}
	m := &cbcMode{ks: ks, dir: dir}
	copy(m.iv[:], p.IV)
	return m, nil
}

func (m *cbcMode) update(dst, src []byte) ([]byte, error) {
	var x [crypto.BlockSize]byte
	if m.dir == crypto.Encrypt {
		m.carry.feed(src, func(block []byte) {
			xorBytes(x[:], block, m.iv[:])
			m.ks.EncryptBlock(m.iv[:], x[:])
			dst = append(dst, m.iv[:]...)
		})
		return dst, nil
	}

	m.carry.feed(src, func(block []byte) {
		m.ks.DecryptBlock(x[:], block)
		xorBytes(x[:], x[:], m.iv[:])
		copy(m.iv[:], block)
		dst = append(dst, x[:]...)
	})
	return dst, nil
}

func (m *cbcMode) final(dst []byte) ([]byte, error) {
	if m.carry.n != 0 {
		return nil, fmt.Errorf("%w: %d bytes left over", crypto.ErrInvalidBlockSize, m.carry.n)
	}
	return dst, nil
}

func (m *cbcMode) wipe() {
	m.iv = [crypto.BlockSize]byte{}
	m.carry.wipe()
}
