package kat

import (
	"fmt"
	"time"

	"github.com/skiselkov/crypto-test/internal/pkg/validators"
)

// Result is the outcome of one vector in one direction.
type Result struct {
	Vector    string `validate:"required"`
	Mechanism string `validate:"required,oneof=ECB CBC CTR GCM"`
	Number    int    `validate:"min=1"`
	Direction string `validate:"required,oneof=E D"`
	Passed    bool
	// Stage is where a failing vector went wrong: init, update, final or compare.
	Stage  string `validate:"omitempty,oneof=init update final compare"`
	Detail string
	// Offset of the first mismatching byte, -1 when not applicable.
	Offset int `validate:"min=-1"`
}

// Label is the "<MODE>/<n>/<E|D>" report prefix.
func (r *Result) Label() string {
	return fmt.Sprintf("%s/%d/%s", r.Mechanism, r.Number, r.Direction)
}

// Run is one execution of the known-answer suite.
type Run struct {
	ID               string    `validate:"required,uuid4"`
	DateTimeStarted  time.Time `validate:"required"`
	DateTimeFinished time.Time `validate:"required"`
	Mechanism        string    `validate:"omitempty,oneof=ECB CBC CTR GCM"`
	Passed           int       `validate:"min=0"`
	Failed           int       `validate:"min=0"`
	Results          []Result  `validate:"dive"`
}

// OK reports whether every vector passed.
func (r *Run) OK() bool {
	return r.Failed == 0
}

// Validate for validating Run struct
func (r *Run) Validate() error {
	return validators.ValidateStruct(r)
}

// RunQuery filters and paginates stored runs.
type RunQuery struct {
	Mechanism string `validate:"omitempty,oneof=ECB CBC CTR GCM"`
	// OnlyFailed restricts the listing to runs with at least one failure.
	OnlyFailed bool
	Limit      int    `validate:"omitempty,min=1,max=1000"`
	Offset     int    `validate:"omitempty,min=0"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewRunQuery returns a query with default pagination.
func NewRunQuery() *RunQuery {
	return &RunQuery{Limit: 50, SortOrder: "desc"}
}

// Validate for validating RunQuery struct
func (q *RunQuery) Validate() error {
	return validators.ValidateStruct(q)
}
