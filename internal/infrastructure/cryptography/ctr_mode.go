package cryptography

import (
	"encoding/binary"
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

type ctrMode struct {
	ks      *KeySchedule
	counter [crypto.BlockSize]byte
	maskHi  uint64
	maskLo  uint64
	carry   blockCarry
}

func newCTR(ks *KeySchedule, params crypto.Params) (*ctrMode, error) {
	p, ok := params.(*crypto.CTRParams)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: CTR requires *CTRParams", crypto.ErrInvalidParameter)
	}
	if len(p.Counter) != crypto.BlockSize {
		return nil, fmt.Errorf("%w: CTR counter block must be %d bytes, got %d", crypto.ErrInvalidIVLength, crypto.BlockSize, len(p.Counter))
	}
	if p.CounterBits < 1 || p.CounterBits > crypto.CTRMaxCounterBits {
		return nil, fmt.Errorf("%w: counter bits must be in 1..%d, got %d", crypto.ErrInvalidParameter, crypto.CTRMaxCounterBits, p.CounterBits)
	}

	m := &ctrMode{ks: ks}
	copy(m.counter[:], p.Counter)
	m.maskHi, m.maskLo = counterMask(p.CounterBits)
	return m, nil
}

// counterMask returns the low-order bits mask of a 128-bit big-endian counter.
func counterMask(bits int) (hi, lo uint64) {
	if bits >= 64 {
		lo = ^uint64(0)
		if bits == 128 {
			return ^uint64(0), lo
		}
		return (uint64(1) << uint(bits-64)) - 1, lo
	}
	return 0, (uint64(1) << uint(bits)) - 1
}

// increment adds one to the counter field, wrapping inside it.
func (m *ctrMode) increment() {
	hi := binary.BigEndian.Uint64(m.counter[0:8])
	lo := binary.BigEndian.Uint64(m.counter[8:16])

	nlo := lo + 1
	nhi := hi
	if nlo == 0 {
		nhi++
	}

	lo = (lo &^ m.maskLo) | (nlo & m.maskLo)
	hi = (hi &^ m.maskHi) | (nhi & m.maskHi)

	binary.BigEndian.PutUint64(m.counter[0:8], hi)
	binary.BigEndian.PutUint64(m.counter[8:16], lo)
}

// update works the same in both directions.
func (m *ctrMode) update(dst, src []byte) ([]byte, error) {
	var keystream [crypto.BlockSize]byte
	m.carry.feed(src, func(block []byte) {
		m.ks.EncryptBlock(keystream[:], m.counter[:])
		m.increment()
		xorBytes(keystream[:], keystream[:], block)
		dst = append(dst, keystream[:]...)
	})
	return dst, nil
}

func (m *ctrMode) final(dst []byte) ([]byte, error) {
	rest := m.carry.pending()
	if len(rest) == 0 {
		return dst, nil
	}
	var keystream [crypto.BlockSize]byte
	m.ks.EncryptBlock(keystream[:], m.counter[:])
	m.increment()
	xorBytes(keystream[:len(rest)], keystream[:len(rest)], rest)
	dst = append(dst, keystream[:len(rest)]...)
	zeroBytes(keystream[:])
	return dst, nil
}

func (m *ctrMode) wipe() {
	m.counter = [crypto.BlockSize]byte{}
	m.carry.wipe()
}
