package v1

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/skiselkov/crypto-test/internal/domain/crypto"
	"github.com/skiselkov/crypto-test/internal/domain/kat"
	"github.com/skiselkov/crypto-test/internal/pkg/validators"
)

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// RunKATRequest selects which vectors a suite run covers
type RunKATRequest struct {
	// Mechanism is one of ECB, CBC, CTR, GCM; empty runs every vector.
	Mechanism string `json:"mechanism" validate:"omitempty,oneof=ECB CBC CTR GCM"`
}

// Validate for validating RunKATRequest struct
func (r *RunKATRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// KATResultResponse is one vector outcome
type KATResultResponse struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
	Stage  string `json:"stage,omitempty"`
	Detail string `json:"detail,omitempty"`
	Offset int    `json:"offset"`
}

// KATRunResponse is a suite run with its results
type KATRunResponse struct {
	ID               string              `json:"id"`
	DateTimeStarted  time.Time           `json:"date_time_started"`
	DateTimeFinished time.Time           `json:"date_time_finished"`
	Mechanism        string              `json:"mechanism,omitempty"`
	Passed           int                 `json:"passed"`
	Failed           int                 `json:"failed"`
	OK               bool                `json:"ok"`
	Results          []KATResultResponse `json:"results,omitempty"`
}

// NewKATRunResponse converts a domain run to its response
func NewKATRunResponse(run *kat.Run) KATRunResponse {
	response := KATRunResponse{
		ID:               run.ID,
		DateTimeStarted:  run.DateTimeStarted,
		DateTimeFinished: run.DateTimeFinished,
		Mechanism:        run.Mechanism,
		Passed:           run.Passed,
		Failed:           run.Failed,
		OK:               run.OK(),
	}
	for i := range run.Results {
		r := &run.Results[i]
		response.Results = append(response.Results, KATResultResponse{
			Label:  r.Label(),
			Passed: r.Passed,
			Stage:  r.Stage,
			Detail: r.Detail,
			Offset: r.Offset,
		})
	}
	return response
}

// CipherRequest is a one-shot cipher operation. Binary fields are hex
// encoded; IV carries the initial counter block for CTR.
type CipherRequest struct {
	Mechanism   string `json:"mechanism" validate:"required,oneof=ECB CBC CTR GCM"`
	Direction   string `json:"direction" validate:"required,oneof=encrypt decrypt"`
	Key         string `json:"key" validate:"required,aeskeyhex"`
	IV          string `json:"iv" validate:"aesiv"`
	CounterBits int    `json:"counter_bits" validate:"omitempty,min=1,max=128"`
	AAD         string `json:"aad" validate:"omitempty,hexadecimal"`
	TagBits     int    `json:"tag_bits" validate:"tagbits"`
	// Tag is the expected GCM tag when it is not appended to Data.
	Tag  string `json:"tag" validate:"omitempty,hexadecimal"`
	Data string `json:"data" validate:"omitempty,hexadecimal"`
}

// Validate for validating CipherRequest struct
func (r *CipherRequest) Validate() error {
	return validators.ValidateStruct(r)
}

// CipherOperation is a decoded CipherRequest
type CipherOperation struct {
	Mechanism crypto.Mechanism
	Direction crypto.Direction
	Key       []byte
	Params    crypto.Params
	Data      []byte
}

// Decode converts the validated request into session arguments
func (r *CipherRequest) Decode() (*CipherOperation, error) {
	mech, err := crypto.ParseMechanism(r.Mechanism)
	if err != nil {
		return nil, err
	}
	dir, err := crypto.ParseDirection(r.Direction)
	if err != nil {
		return nil, err
	}

	op := &CipherOperation{Mechanism: mech, Direction: dir}
	if op.Key, err = decodeHex("key", r.Key); err != nil {
		return nil, err
	}
	if op.Data, err = decodeHex("data", r.Data); err != nil {
		return nil, err
	}
	iv, err := decodeHex("iv", r.IV)
	if err != nil {
		return nil, err
	}
	aad, err := decodeHex("aad", r.AAD)
	if err != nil {
		return nil, err
	}
	tag, err := decodeHex("tag", r.Tag)
	if err != nil {
		return nil, err
	}

	switch mech {
	case crypto.MechanismCBC:
		op.Params = &crypto.CBCParams{IV: iv}
	case crypto.MechanismCTR:
		bits := r.CounterBits
		if bits == 0 {
			bits = crypto.CTRMaxCounterBits
		}
		op.Params = &crypto.CTRParams{Counter: iv, CounterBits: bits}
	case crypto.MechanismGCM:
		tagBits := r.TagBits
		if tagBits == 0 {
			tagBits = crypto.GCMMaxTagBits
		}
		op.Params = &crypto.GCMParams{IV: iv, AAD: aad, TagBits: tagBits, Tag: tag}
	}

	return op, nil
}

func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid hex", crypto.ErrInvalidParameter, field)
	}
	return b, nil
}

// CipherResponse holds the hex encoded session output
type CipherResponse struct {
	Output string `json:"output"`
}
