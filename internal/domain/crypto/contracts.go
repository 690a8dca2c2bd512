package crypto

// Session is a streaming cipher operation: Update may be called any number
// of times, Final exactly once. A session is terminal after Final and is not
// safe for concurrent use.
type Session interface {
	// Update feeds more input and returns whatever output is ready. The
	// result may be empty, e.g. while a partial block is carried or while a
	// GCM decryption is still waiting for its tag.
	Update(data []byte) ([]byte, error)

	// Final flushes carried state, produces or checks the GCM tag and ends
	// the session.
	Final() ([]byte, error)
}

// AESProcessor handles AES symmetric encryption of whole buffers.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt seals data with AES-GCM under a fresh random IV.
	// The output is IV || ciphertext || tag.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt opens a buffer produced by Encrypt.
	// Returns ErrAuthenticationFailure if the tag does not verify.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

// SessionFactory opens initialized cipher sessions.
type SessionFactory interface {
	// NewSession expands key and returns a session ready for Update. The
	// session owns the expanded key and wipes it at Final.
	NewSession(mech Mechanism, dir Direction, key []byte, params Params) (Session, error)
}
