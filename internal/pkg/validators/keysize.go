package validators

import (
	"encoding/hex"

	"github.com/go-playground/validator/v10"
	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// KeySizeValidation validates an AES key size given in bits.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == 128 || keySize == 192 || keySize == 256
}

// HexKeyValidation validates a hex-encoded AES key of 16, 24 or 32 bytes.
func HexKeyValidation(fl validator.FieldLevel) bool {
	key, err := hex.DecodeString(fl.Field().String())
	if err != nil {
		return false
	}
	return crypto.ValidKeySize(len(key))
}

// TagBitsValidation validates a GCM tag length in bits. Zero selects the default.
func TagBitsValidation(fl validator.FieldLevel) bool {
	bits := int(fl.Field().Int())
	return bits == 0 || crypto.ValidTagBits(bits)
}

// IVValidation validates a hex-encoded IV based on the sibling Mechanism field:
// none for ECB, one block for CBC and CTR, any non-empty length for GCM.
func IVValidation(fl validator.FieldLevel) bool {
	mechanism := fl.Parent().FieldByName("Mechanism").String()
	iv, err := hex.DecodeString(fl.Field().String())
	if err != nil {
		return false
	}

	mech, err := crypto.ParseMechanism(mechanism)
	if err != nil {
		return false
	}

	switch mech {
	case crypto.MechanismECB:
		return len(iv) == 0
	case crypto.MechanismCBC, crypto.MechanismCTR:
		return len(iv) == crypto.BlockSize
	case crypto.MechanismGCM:
		return len(iv) > 0
	default:
		return false
	}
}

// Register installs the validations under the tags aeskeysize, aeskeyhex,
// tagbits and aesiv.
func Register(validate *validator.Validate) error {
	validations := map[string]validator.Func{
		"aeskeysize": KeySizeValidation,
		"aeskeyhex":  HexKeyValidation,
		"tagbits":    TagBitsValidation,
		"aesiv":      IVValidation,
	}
	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
