package crypto

import "errors"

// Cipher error taxonomy. Callers match with errors.Is; call sites wrap these with context.
var (
	ErrInvalidKeyLength      = errors.New("invalid key length")
	ErrInvalidIVLength       = errors.New("invalid IV length")
	ErrInvalidParameter      = errors.New("invalid mechanism parameter")
	ErrInvalidMechanism      = errors.New("invalid mechanism")
	ErrInvalidBlockSize      = errors.New("data length is not a multiple of the block size")
	ErrInvalidTagLength      = errors.New("invalid tag length")
	ErrAuthenticationFailure = errors.New("message authentication failed")
	ErrSessionClosed         = errors.New("session already finalized")
	ErrSessionNotInitialized = errors.New("session not initialized")
)
