package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/afyawatch/outbreak-api/schema"
)

var (
	ErrAssessmentNotFound  = fmt.Errorf("assessment not found")
	ErrDuplicateAssessment = fmt.Errorf("assessment for this patient already recorded")
)

// ClinicalCore is the relational datastore for patient triage
// assessments.
type ClinicalCore interface {
	Ping() error

	CreateAssessment(assessment *schema.PatientAssessment) error
	GetAssessment(id string) (*schema.PatientAssessment, error)
	ListAssessments(condition schema.Disease, limit int) ([]schema.PatientAssessment, error)
}

// ClinicalStore is an implementation of ClinicalCore
type ClinicalStore struct {
	ormDB *gorm.DB
}

func NewClinicalStore(ormDB *gorm.DB) *ClinicalStore {
	return &ClinicalStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ClinicalStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Migrate keeps the assessments table in sync with the schema.
func (s *ClinicalStore) Migrate() error {
	return s.ormDB.AutoMigrate(&schema.PatientAssessment{}).Error
}

func (s *ClinicalStore) CreateAssessment(assessment *schema.PatientAssessment) error {
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	if err := s.ormDB.Create(assessment).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrDuplicateAssessment
		}
		return err
	}
	return nil
}

func (s *ClinicalStore) GetAssessment(id string) (*schema.PatientAssessment, error) {
	var a schema.PatientAssessment
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *ClinicalStore) ListAssessments(condition schema.Disease, limit int) ([]schema.PatientAssessment, error) {
	query := s.ormDB.Order("created_at desc")
	if condition != "" {
		query = query.Where("condition = ?", condition)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var assessments []schema.PatientAssessment
	if err := query.Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
