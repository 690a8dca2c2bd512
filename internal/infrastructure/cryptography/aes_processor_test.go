//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestAESKey128 = 16
	TestAESKey192 = 24
	TestAESKey256 = 32
)

func setupAESProcessor(t *testing.T) crypto.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		for _, size := range []int{TestAESKey128, TestAESKey192, TestAESKey256} {
			key, err := processor.GenerateKey(size)
			require.NoError(t, err)

			plainText := []byte("This is a test message.")

			ciphertext, err := processor.Encrypt(plainText, key)
			require.NoError(t, err)
			assert.Len(t, ciphertext, crypto.GCMStandardIVSize+len(plainText)+16)

			decryptedText, err := processor.Decrypt(ciphertext, key)
			require.NoError(t, err)
			assert.Equal(t, plainText, decryptedText)
		}
	})

	t.Run("EncryptEmpty", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)

		ciphertext, err := processor.Encrypt(nil, key)
		require.NoError(t, err)

		decryptedText, err := processor.Decrypt(ciphertext, key)
		require.NoError(t, err)
		assert.Empty(t, decryptedText)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		key := []byte("shortkey")
		plainText := []byte("This is a test.")

		_, err := processor.Encrypt(plainText, key)
		assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey128, len(key))

		key256, err := processor.GenerateKey(TestAESKey256)
		assert.NoError(t, err)
		assert.Equal(t, TestAESKey256, len(key256))

		_, err = processor.GenerateKey(20)
		assert.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)

		plainText := []byte("Test decryption with wrong key.")
		ciphertext, err := processor.Encrypt(plainText, key)
		require.NoError(t, err)

		wrongKey, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(ciphertext, wrongKey)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
		assert.Nil(t, decrypted)
	})

	t.Run("DecryptTampered", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		ciphertext, err := processor.Encrypt([]byte("attack at dawn"), key)
		require.NoError(t, err)
		ciphertext[crypto.GCMStandardIVSize] ^= 0x01

		_, err = processor.Decrypt(ciphertext, key)
		assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	})

	t.Run("DecryptShortCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		assert.NoError(t, err)

		_, err = processor.Decrypt([]byte("short"), key)
		assert.Error(t, err)
	})
}
