package cryptography

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

type ecbMode struct {
	ks    *KeySchedule
	dir   crypto.Direction
	carry blockCarry
}

func newECB(ks *KeySchedule, dir crypto.Direction, params crypto.Params) (*ecbMode, error) {
	if params != nil {
		return nil, fmt.Errorf("%w: ECB takes no parameters", crypto.ErrInvalidParameter)
	}
	return &ecbMode{ks: ks, dir: dir}, nil
}

func (m *ecbMode) update(dst, src []byte) ([]byte, error) {
	var out [crypto.BlockSize]byte
	m.carry.feed(src, func(block []byte) {
		if m.dir == crypto.Encrypt {
			m.ks.EncryptBlock(out[:], block)
		} else {
			m.ks.DecryptBlock(out[:], block)
		}
		dst = append(dst, out[:]...)
	})
	return dst, nil
}

func (m *ecbMode) final(dst []byte) ([]byte, error) {
	if m.carry.n != 0 {
		return nil, fmt.Errorf("%w: %d bytes left over", crypto.ErrInvalidBlockSize, m.carry.n)
	}
	return dst, nil
}

func (m *ecbMode) wipe() {
	m.carry.wipe()
}
