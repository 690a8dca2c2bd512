package cryptography

import (
	"crypto/rand"
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/pkg/logger"
)

// aesProcessor seals buffers with AES-GCM: IV || ciphertext || tag.
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (crypto.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if !crypto.ValidKeySize(keySize) {
		return nil, fmt.Errorf("%w: %d bytes", crypto.ErrInvalidKeyLength, keySize)
	}
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	a.logger.Info(fmt.Sprintf("Generated AES-%d key", keySize*8))
	return key, nil
}

// Encrypt encrypts data with AES-GCM under a random 96-bit IV
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	iv := make([]byte, crypto.GCMStandardIVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	params := &crypto.GCMParams{IV: iv, TagBits: crypto.GCMMaxTagBits}
	sealed, err := Process(crypto.MechanismGCM, crypto.Encrypt, key, params, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	a.logger.Info(fmt.Sprintf("Encrypted %d bytes with AES-%d-GCM", len(data), len(key)*8))
	return append(iv, sealed...), nil
}

// Decrypt decrypts and authenticates a buffer produced by Encrypt
func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	minSize := crypto.GCMStandardIVSize + crypto.GCMMaxTagBits/8
	if len(ciphertext) < minSize {
		return nil, fmt.Errorf("%w: ciphertext too short (%d bytes)", crypto.ErrInvalidParameter, len(ciphertext))
	}

	params := &crypto.GCMParams{IV: ciphertext[:crypto.GCMStandardIVSize], TagBits: crypto.GCMMaxTagBits}
	plaintext, err := Process(crypto.MechanismGCM, crypto.Decrypt, key, params, ciphertext[crypto.GCMStandardIVSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	a.logger.Info(fmt.Sprintf("Decrypted %d bytes with AES-%d-GCM", len(plaintext), len(key)*8))
	return plaintext, nil
}
