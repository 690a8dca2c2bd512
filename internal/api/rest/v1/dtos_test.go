//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKATRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RunKATRequest{}).Validate())
	assert.NoError(t, (&RunKATRequest{Mechanism: "CTR"}).Validate())
	assert.Error(t, (&RunKATRequest{Mechanism: "ctr"}).Validate())
}

func TestCipherRequest_Decode(t *testing.T) {
	request := CipherRequest{
		Mechanism: "GCM",
		Direction: "decrypt",
		Key:       zeroKey128,
		IV:        "cafebabefacedbaddecaf888",
		AAD:       "feedface",
		Tag:       gcmTC2T,
		Data:      gcmTC2C,
	}
	require.NoError(t, request.Validate())

	op, err := request.Decode()
	require.NoError(t, err)

	assert.Equal(t, crypto.MechanismGCM, op.Mechanism)
	assert.Equal(t, crypto.Decrypt, op.Direction)
	assert.Len(t, op.Key, 16)
	assert.Len(t, op.Data, 16)

	params, ok := op.Params.(*crypto.GCMParams)
	require.True(t, ok)
	assert.Equal(t, crypto.GCMMaxTagBits, params.TagBits)
	assert.Equal(t, []byte{0xfe, 0xed, 0xfa, 0xce}, params.AAD)
	assert.Len(t, params.Tag, 16)
}

func TestCipherRequest_DecodeCTRDefaults(t *testing.T) {
	request := CipherRequest{Mechanism: "CTR", Direction: "encrypt", Key: zeroKey128, IV: zeroKey128}
	op, err := request.Decode()
	require.NoError(t, err)

	params, ok := op.Params.(*crypto.CTRParams)
	require.True(t, ok)
	assert.Equal(t, crypto.CTRMaxCounterBits, params.CounterBits)
}

func TestCipherRequest_DecodeECBHasNoParams(t *testing.T) {
	request := CipherRequest{Mechanism: "ECB", Direction: "encrypt", Key: zeroKey128}
	op, err := request.Decode()
	require.NoError(t, err)
	assert.Nil(t, op.Params)
}
