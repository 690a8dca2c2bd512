package cryptography

import (
	"fmt"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
)

// modeEngine is implemented by the four mode engines of this package only.
type modeEngine interface {
	update(dst, src []byte) ([]byte, error)
	final(dst []byte) ([]byte, error)
	wipe()
}

type sessionState int

const (
	stateCreated sessionState = iota
	stateInitialized
	stateActive
	stateFinalized
)

func (s sessionState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateInitialized:
		return "initialized"
	case stateActive:
		return "active"
	case stateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Session is a single AES cipher operation. The lifecycle is
// created -> initialized -> active -> finalized; a finalized session rejects
// every further call with crypto.ErrSessionClosed.
type Session struct {
	state     sessionState
	mech      crypto.Mechanism
	dir       crypto.Direction
	ks        *KeySchedule
	ownsKey   bool
	engine    modeEngine
	processed uint64
}

var _ crypto.Session = (*Session)(nil)

// NewSession returns an uninitialized session.
func NewSession() *Session {
	return &Session{state: stateCreated}
}

// Open creates a session over a shared key schedule, which the session
// never modifies.
func Open(mech crypto.Mechanism, dir crypto.Direction, ks *KeySchedule, params crypto.Params) (*Session, error) {
	s := NewSession()
	if err := s.InitWithSchedule(mech, dir, ks, params); err != nil {
		return nil, err
	}
	return s, nil
}

// Init expands key and prepares the mode engine. The expanded schedule
// belongs to the session and is wiped at Final.
func (s *Session) Init(mech crypto.Mechanism, dir crypto.Direction, key []byte, params crypto.Params) error {
	if err := s.checkFresh(); err != nil {
		return err
	}
	ks, err := ExpandKey(key)
	if err != nil {
		return err
	}
	if err := s.init(mech, dir, ks, params); err != nil {
		ks.Wipe()
		return err
	}
	s.ownsKey = true
	return nil
}

// InitWithSchedule prepares the mode engine over an already expanded key.
func (s *Session) InitWithSchedule(mech crypto.Mechanism, dir crypto.Direction, ks *KeySchedule, params crypto.Params) error {
	if err := s.checkFresh(); err != nil {
		return err
	}
	if ks == nil {
		return fmt.Errorf("%w: nil key schedule", crypto.ErrInvalidParameter)
	}
	return s.init(mech, dir, ks, params)
}

func (s *Session) checkFresh() error {
	switch s.state {
	case stateCreated:
		return nil
	case stateFinalized:
		return crypto.ErrSessionClosed
	default:
		return fmt.Errorf("%w: session is already %s", crypto.ErrInvalidParameter, s.state)
	}
}

func (s *Session) init(mech crypto.Mechanism, dir crypto.Direction, ks *KeySchedule, params crypto.Params) error {
	if !mech.Valid() {
		return fmt.Errorf("%w: %s", crypto.ErrInvalidMechanism, mech)
	}
	if dir != crypto.Encrypt && dir != crypto.Decrypt {
		return fmt.Errorf("%w: %s", crypto.ErrInvalidParameter, dir)
	}

	var (
		engine modeEngine
		err    error
	)
	switch mech {
	case crypto.MechanismECB:
		engine, err = newECB(ks, dir, params)
	case crypto.MechanismCBC:
		engine, err = newCBC(ks, dir, params)
	case crypto.MechanismCTR:
		engine, err = newCTR(ks, params)
	case crypto.MechanismGCM:
		engine, err = newGCM(ks, dir, params)
	}
	if err != nil {
		return err
	}

	s.mech = mech
	s.dir = dir
	s.ks = ks
	s.engine = engine
	s.state = stateInitialized
	return nil
}

func (s *Session) checkUsable() error {
	switch s.state {
	case stateCreated:
		return crypto.ErrSessionNotInitialized
	case stateFinalized:
		return crypto.ErrSessionClosed
	}
	return nil
}

// Update feeds data and returns the output that is ready. Errors end the session.
func (s *Session) Update(data []byte) ([]byte, error) {
	if err := s.checkUsable(); err != nil {
		return nil, err
	}
	out, err := s.engine.update(nil, data)
	if err != nil {
		s.finish()
		return nil, err
	}
	s.state = stateActive
	s.processed += uint64(len(data))
	return out, nil
}

// Final flushes the session. It is terminal whether or not it succeeds.
func (s *Session) Final() ([]byte, error) {
	if err := s.checkUsable(); err != nil {
		return nil, err
	}
	out, err := s.engine.final(nil)
	s.finish()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) finish() {
	s.engine.wipe()
	s.engine = nil
	if s.ownsKey {
		s.ks.Wipe()
	}
	s.ks = nil
	s.state = stateFinalized
}

// Mechanism returns the mode selected at init.
func (s *Session) Mechanism() crypto.Mechanism { return s.mech }

// Direction returns the direction selected at init.
func (s *Session) Direction() crypto.Direction { return s.dir }

// Processed returns the number of input bytes accepted by Update.
func (s *Session) Processed() uint64 { return s.processed }

// Finalized reports whether the session has ended.
func (s *Session) Finalized() bool { return s.state == stateFinalized }

// Process runs a whole buffer through a fresh session: Init, one Update and Final.
func Process(mech crypto.Mechanism, dir crypto.Direction, key []byte, params crypto.Params, data []byte) ([]byte, error) {
	s := NewSession()
	if err := s.Init(mech, dir, key, params); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	out, err := s.Update(data)
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	rest, err := s.Final()
	if err != nil {
		zeroBytes(out)
		return nil, fmt.Errorf("final: %w", err)
	}
	return append(out, rest...), nil
}

type sessionFactory struct{}

// NewSessionFactory returns a factory producing Sessions.
func NewSessionFactory() crypto.SessionFactory {
	return sessionFactory{}
}

func (sessionFactory) NewSession(mech crypto.Mechanism, dir crypto.Direction, key []byte, params crypto.Params) (crypto.Session, error) {
	s := NewSession()
	if err := s.Init(mech, dir, key, params); err != nil {
		return nil, err
	}
	return s, nil
}
