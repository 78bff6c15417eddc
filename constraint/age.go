package constraint

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/afyawatch/outbreak-api/schema"
)

var (
	ErrInvalidRange = fmt.Errorf("invalid age range")
	ErrInvalidInput = fmt.Errorf("age must not be negative")
)

const (
	// DefaultMinAgeMonths and DefaultMaxAgeMonths bound the target
	// paediatric population for diarrhoea and meningitis surveillance.
	DefaultMinAgeMonths = 1
	DefaultMaxAgeMonths = 60

	// MaxAgeMonthsBound is the upper sanity bound for either end of the
	// window.
	MaxAgeMonthsBound = 1200
)

// AgeConstraintManager owns the accepted age window used to scope
// observations for paediatric monitoring. The window is replaced
// atomically; readers always see a complete window.
type AgeConstraintManager struct {
	mu     sync.RWMutex
	window schema.AgeWindow
}

func NewAgeConstraintManager() *AgeConstraintManager {
	return &AgeConstraintManager{
		window: schema.AgeWindow{
			MinMonths: DefaultMinAgeMonths,
			MaxMonths: DefaultMaxAgeMonths,
		},
	}
}

// NewAgeConstraintManagerFromConfig seeds the window from the
// "ingest.age.min" and "ingest.age.max" config keys when both are set.
// An invalid configured window falls back to the defaults.
func NewAgeConstraintManagerFromConfig() *AgeConstraintManager {
	m := NewAgeConstraintManager()
	if viper.IsSet("ingest.age.min") && viper.IsSet("ingest.age.max") {
		if err := m.SetAgeRange(viper.GetInt("ingest.age.min"), viper.GetInt("ingest.age.max")); err != nil {
			log.WithFields(log.Fields{
				"prefix": "constraint",
				"error":  err,
			}).Warn("configured age range rejected, keeping defaults")
		}
	}
	return m
}

// SetAgeRange replaces the current window. The window is rejected when
// either bound is negative, when min exceeds max, or when either bound
// exceeds the sanity bound.
func (m *AgeConstraintManager) SetAgeRange(minMonths, maxMonths int) error {
	if minMonths < 0 || maxMonths < 0 {
		return ErrInvalidRange
	}
	if minMonths > maxMonths {
		return ErrInvalidRange
	}
	if minMonths > MaxAgeMonthsBound || maxMonths > MaxAgeMonthsBound {
		return ErrInvalidRange
	}

	m.mu.Lock()
	m.window = schema.AgeWindow{MinMonths: minMonths, MaxMonths: maxMonths}
	m.mu.Unlock()

	return nil
}

// Window returns a snapshot of the current window. Batch consumers read
// it once at the start of a batch so one window applies to the whole
// batch.
func (m *AgeConstraintManager) Window() schema.AgeWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.window
}

// IsAgeInRange reports whether an age in months falls inside the current
// window, bounds inclusive.
func (m *AgeConstraintManager) IsAgeInRange(ageMonths int) (bool, error) {
	if ageMonths < 0 {
		return false, ErrInvalidInput
	}
	return m.Window().Contains(ageMonths), nil
}
