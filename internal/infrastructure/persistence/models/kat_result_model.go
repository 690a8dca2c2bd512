package models

import "github.com/skiselkov/crypto-test/internal/domain/kat"

// KATResultModel is the GORM database model for one vector outcome
type KATResultModel struct {
	ID uint `gorm:"primaryKey;autoIncrement"`
	// RunID references kat_runs.id
	RunID     string `gorm:"not null;index;type:uuid"`
	Position  int    `gorm:"not null"`
	Vector    string `gorm:"type:varchar(16);not null"`
	Mechanism string `gorm:"type:varchar(8);not null"`
	Number    int    `gorm:"not null"`
	Direction string `gorm:"type:varchar(1);not null"`
	Passed    bool   `gorm:"not null"`
	Stage     string `gorm:"type:varchar(16)"`
	Detail    string `gorm:"type:text"`
	Offset    int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KATResultModel) TableName() string {
	return "kat_results"
}

// ToDomain converts GORM model to domain entity
func (m *KATResultModel) ToDomain() kat.Result {
	return kat.Result{
		Vector:    m.Vector,
		Mechanism: m.Mechanism,
		Number:    m.Number,
		Direction: m.Direction,
		Passed:    m.Passed,
		Stage:     m.Stage,
		Detail:    m.Detail,
		Offset:    m.Offset,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KATResultModel) FromDomain(runID string, position int, r *kat.Result) {
	m.RunID = runID
	m.Position = position
	m.Vector = r.Vector
	m.Mechanism = r.Mechanism
	m.Number = r.Number
	m.Direction = r.Direction
	m.Passed = r.Passed
	m.Stage = r.Stage
	m.Detail = r.Detail
	m.Offset = r.Offset
}
