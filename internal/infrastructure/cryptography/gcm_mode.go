package cryptography

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// gcmMaxData is the SP 800-38D plaintext limit of 2^39-256 bits.
const gcmMaxData = (1<<32 - 2) * crypto.BlockSize

type gcmMode struct {
	ks      *KeySchedule
	dir     crypto.Direction
	g       ghash
	j0      [crypto.BlockSize]byte
	counter [crypto.BlockSize]byte
	tagSize int
	aadLen  uint64
	dataLen uint64

	// encrypt side
	carry blockCarry

	// decrypt side: nothing is released before the tag checks out
	pending     []byte
	expectedTag []byte
}

func newGCM(ks *KeySchedule, dir crypto.Direction, params crypto.Params) (*gcmMode, error) {
	p, ok := params.(*crypto.GCMParams)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: GCM requires *GCMParams", crypto.ErrInvalidParameter)
	}
	if len(p.IV) == 0 {
		return nil, fmt.Errorf("%w: GCM IV must not be empty", crypto.ErrInvalidIVLength)
	}
	if !crypto.ValidTagBits(p.TagBits) {
		return nil, fmt.Errorf("%w: %d bits", crypto.ErrInvalidTagLength, p.TagBits)
	}
	m := &gcmMode{ks: ks, dir: dir, tagSize: p.TagBits / 8}

	if len(p.Tag) > 0 {
		if dir != crypto.Decrypt {
			return nil, fmt.Errorf("%w: an expected tag only applies to decryption", crypto.ErrInvalidParameter)
		}
		if len(p.Tag) != m.tagSize {
			return nil, fmt.Errorf("%w: expected tag is %d bytes, want %d", crypto.ErrInvalidTagLength, len(p.Tag), m.tagSize)
		}
		m.expectedTag = append([]byte(nil), p.Tag...)
	}

	var h [crypto.BlockSize]byte
	ks.EncryptBlock(h[:], h[:])
	m.g = newGHASH(h[:])
	zeroBytes(h[:])

	m.deriveCounter(p.IV)
	m.counter = m.j0
	gcmInc32(&m.counter)

	m.g.update(p.AAD)
	m.aadLen = uint64(len(p.AAD))
	return m, nil
}

// deriveCounter computes the pre-counter block J0 from the IV.
func (m *gcmMode) deriveCounter(iv []byte) {
	if len(iv) == crypto.GCMStandardIVSize {
		copy(m.j0[:], iv)
		m.j0[crypto.BlockSize-1] = 1
		return
	}
	m.g.update(iv)
	m.g.lengths(0, uint64(len(iv))*8)
	m.g.sum(m.j0[:])
	m.g.reset()
}

func gcmInc32(counter *[crypto.BlockSize]byte) {
	ctr := counter[len(counter)-4:]
	binary.BigEndian.PutUint32(ctr, binary.BigEndian.Uint32(ctr)+1)
}

func (m *gcmMode) update(dst, src []byte) ([]byte, error) {
	if m.dir == crypto.Decrypt {
		limit := uint64(gcmMaxData)
		if m.expectedTag == nil {
			limit += uint64(m.tagSize)
		}
		if uint64(len(m.pending))+uint64(len(src)) > limit {
			return nil, fmt.Errorf("%w: GCM message too long", crypto.ErrInvalidParameter)
		}
		m.pending = append(m.pending, src...)
		return dst, nil
	}

	if m.dataLen+uint64(m.carry.n)+uint64(len(src)) > gcmMaxData {
		return nil, fmt.Errorf("%w: GCM message too long", crypto.ErrInvalidParameter)
	}
	var keystream [crypto.BlockSize]byte
	m.carry.feed(src, func(block []byte) {
		m.ks.EncryptBlock(keystream[:], m.counter[:])
		gcmInc32(&m.counter)
		xorBytes(keystream[:], keystream[:], block)
		m.g.block(keystream[:])
		m.dataLen += crypto.BlockSize
		dst = append(dst, keystream[:]...)
	})
	return dst, nil
}

func (m *gcmMode) final(dst []byte) ([]byte, error) {
	if m.dir == crypto.Decrypt {
		return m.open(dst)
	}

	if rest := m.carry.pending(); len(rest) > 0 {
		var keystream [crypto.BlockSize]byte
		m.ks.EncryptBlock(keystream[:], m.counter[:])
		gcmInc32(&m.counter)
		out := keystream[:len(rest)]
		xorBytes(out, out, rest)
		m.g.update(out)
		m.dataLen += uint64(len(out))
		dst = append(dst, out...)
		zeroBytes(keystream[:])
	}

	var tag [crypto.BlockSize]byte
	m.computeTag(&tag)
	return append(dst, tag[:m.tagSize]...), nil
}

func (m *gcmMode) computeTag(tag *[crypto.BlockSize]byte) {
	var s [crypto.BlockSize]byte
	m.g.lengths(m.aadLen*8, m.dataLen*8)
	m.g.sum(s[:])
	m.ks.EncryptBlock(tag[:], m.j0[:])
	xorBytes(tag[:], tag[:], s[:])
}

// open verifies the buffered ciphertext and only then decrypts it.
func (m *gcmMode) open(dst []byte) ([]byte, error) {
	ciphertext, tag := m.pending, m.expectedTag
	if tag == nil {
		if len(m.pending) < m.tagSize {
			zeroBytes(m.pending)
			return nil, fmt.Errorf("%w: input shorter than the %d byte tag", crypto.ErrAuthenticationFailure, m.tagSize)
		}
		split := len(m.pending) - m.tagSize
		ciphertext, tag = m.pending[:split], m.pending[split:]
	}

	m.g.update(ciphertext)
	m.dataLen = uint64(len(ciphertext))

	var expected [crypto.BlockSize]byte
	m.computeTag(&expected)
	ok := subtle.ConstantTimeCompare(expected[:m.tagSize], tag) == 1
	zeroBytes(expected[:])
	if !ok {
		zeroBytes(m.pending)
		return nil, crypto.ErrAuthenticationFailure
	}

	start := len(dst)
	dst = append(dst, ciphertext...)
	out := dst[start:]
	var keystream [crypto.BlockSize]byte
	for len(out) > 0 {
		m.ks.EncryptBlock(keystream[:], m.counter[:])
		gcmInc32(&m.counter)
		n := len(out)
		if n > crypto.BlockSize {
			n = crypto.BlockSize
		}
		xorBytes(out[:n], out[:n], keystream[:n])
		out = out[n:]
	}
	zeroBytes(keystream[:])
	zeroBytes(m.pending)
	return dst, nil
}

func (m *gcmMode) wipe() {
	m.g.wipe()
	m.j0 = [crypto.BlockSize]byte{}
	m.counter = [crypto.BlockSize]byte{}
	m.carry.wipe()
	zeroBytes(m.pending)
	m.pending = nil
	m.expectedTag = nil
}
