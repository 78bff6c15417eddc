package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SymptomSet holds the raw symptom flags captured during an assessment.
type SymptomSet map[string]bool

func (s SymptomSet) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SymptomSet) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, s)
}

// PatientAssessment is one recorded paediatric triage assessment.
type PatientAssessment struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	PatientID      string     `json:"patient_id" gorm:"unique_index"`
	Initials       string     `json:"initials"`
	AgeMonths      int        `json:"age_months"`
	Residence      string     `json:"residence"`
	Gender         string     `json:"gender"`
	Condition      Disease    `json:"condition"`
	Classification string     `json:"classification"`
	Guidance       string     `json:"guidance"`
	Symptoms       SymptomSet `json:"symptoms" gorm:"type:jsonb"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
