package models

import (
	"time"

	"github.com/skiselkov/crypto-test/internal/domain/kat"
)

// KATRunModel is the GORM database model for a known-answer suite run
type KATRunModel struct {
	ID               string           `gorm:"primaryKey;type:uuid"`
	DateTimeStarted  time.Time        `gorm:"not null;index"`
	DateTimeFinished time.Time        `gorm:"not null"`
	Mechanism        string           `gorm:"type:varchar(8);index"`
	Passed           int              `gorm:"not null"`
	Failed           int              `gorm:"not null;index"`
	Results          []KATResultModel `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (KATRunModel) TableName() string {
	return "kat_runs"
}

// ToDomain converts GORM model to domain entity
func (m *KATRunModel) ToDomain() *kat.Run {
	run := &kat.Run{
		ID:               m.ID,
		DateTimeStarted:  m.DateTimeStarted,
		DateTimeFinished: m.DateTimeFinished,
		Mechanism:        m.Mechanism,
		Passed:           m.Passed,
		Failed:           m.Failed,
	}
	for i := range m.Results {
		run.Results = append(run.Results, m.Results[i].ToDomain())
	}
	return run
}

// FromDomain converts domain entity to GORM model
func (m *KATRunModel) FromDomain(r *kat.Run) {
	m.ID = r.ID
	m.DateTimeStarted = r.DateTimeStarted
	m.DateTimeFinished = r.DateTimeFinished
	m.Mechanism = r.Mechanism
	m.Passed = r.Passed
	m.Failed = r.Failed
	m.Results = make([]KATResultModel, len(r.Results))
	for i := range r.Results {
		m.Results[i].FromDomain(r.ID, i, &r.Results[i])
	}
}
