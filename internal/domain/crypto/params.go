package crypto

// Params carries mode-specific session parameters. The set of
// implementations is closed: ECB takes nil, CBC *CBCParams, CTR *CTRParams
// and GCM *GCMParams.
type Params interface {
	mechanism() Mechanism
}

// CBCParams holds the initialization vector for CBC.
type CBCParams struct {
	IV []byte
}

func (*CBCParams) mechanism() Mechanism { return MechanismCBC }

// CTRParams describes the initial counter block. Only the low-order
// CounterBits of Counter are incremented; the remaining high bits are a
// fixed nonce.
type CTRParams struct {
	Counter     []byte
	CounterBits int
}

func (*CTRParams) mechanism() Mechanism { return MechanismCTR }

// GCMParams configures a GCM session.
//
// AAD is authenticated but not encrypted. TagBits selects the tag length
// (32, 64, 96, 104, 112, 120 or 128). When decrypting, the expected tag is
// normally the trailing TagBits/8 bytes of the input; setting Tag supplies it
// out of band instead, in which case the whole input is ciphertext.
type GCMParams struct {
	IV      []byte
	AAD     []byte
	TagBits int
	Tag     []byte
}

func (*GCMParams) mechanism() Mechanism { return MechanismGCM }

// ParamsMechanism returns the mechanism a params value belongs to, or zero for nil.
func ParamsMechanism(p Params) Mechanism {
	if p == nil {
		return 0
	}
	return p.mechanism()
}
