package crypto

import (
	"fmt"
	"strings"
)

// BlockSize is the AES block size in bytes
const BlockSize = 16

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// GCMStandardIVSize is the IV length that takes the J0 fast path
const GCMStandardIVSize = 12

// GCMMaxTagBits is the full (untruncated) GCM tag length in bits
const GCMMaxTagBits = 128

// CTRMaxCounterBits is the width of the whole counter block
const CTRMaxCounterBits = 128

// Mechanism selects the block cipher mode of a session.
type Mechanism int

// Supported mechanisms
const (
	MechanismECB Mechanism = iota + 1
	MechanismCBC
	MechanismCTR
	MechanismGCM
)

// Mechanisms lists every supported mechanism in harness order.
var Mechanisms = []Mechanism{MechanismECB, MechanismCBC, MechanismCTR, MechanismGCM}

func (m Mechanism) String() string {
	switch m {
	case MechanismECB:
		return "ECB"
	case MechanismCBC:
		return "CBC"
	case MechanismCTR:
		return "CTR"
	case MechanismGCM:
		return "GCM"
	default:
		return fmt.Sprintf("Mechanism(%d)", int(m))
	}
}

// Valid reports whether m is one of the supported mechanisms.
func (m Mechanism) Valid() bool {
	return m >= MechanismECB && m <= MechanismGCM
}

// ParseMechanism maps a mechanism name such as "gcm" or "CKM_AES_GCM" to a Mechanism.
// It is meant for the CLI and REST layers; the cipher core only deals in the enum.
func ParseMechanism(name string) (Mechanism, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "CKM_")
	n = strings.TrimPrefix(n, "AES_")
	n = strings.TrimPrefix(n, "AES-")
	for _, m := range Mechanisms {
		if m.String() == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMechanism, name)
}

// Direction tells a session whether to encrypt or decrypt.
type Direction int

// Supported directions
const (
	Encrypt Direction = iota + 1
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Short returns the single-letter form used in harness reports.
func (d Direction) Short() string {
	if d == Decrypt {
		return "D"
	}
	return "E"
}

// ParseDirection accepts "encrypt"/"decrypt" and their single-letter forms.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "encrypt", "e", "enc":
		return Encrypt, nil
	case "decrypt", "d", "dec":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidParameter, name)
	}
}

// ValidKeySize reports whether n is an AES key length in bytes.
func ValidKeySize(n int) bool {
	return n == AESKeySize128 || n == AESKeySize192 || n == AESKeySize256
}

// ValidTagBits reports whether bits is an accepted GCM tag length.
func ValidTagBits(bits int) bool {
	switch bits {
	case 32, 64, 96, 104, 112, 120, 128:
		return true
	}
	return false
}
