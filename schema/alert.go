package schema

import "time"

const (
	AlertCollection = "alert"
)

// Alert is raised when an accepted risk area crosses the per-disease
// alert thresholds.
type Alert struct {
	ID        string    `json:"id" bson:"id"`
	AlertType string    `json:"alert_type" bson:"alert_type"`
	Disease   Disease   `json:"disease" bson:"disease"`
	Location  string    `json:"location" bson:"location"`
	RiskLevel RiskLevel `json:"risk_level" bson:"risk_level"`
	Cases     int       `json:"cases" bson:"cases"`
	Deaths    int       `json:"deaths" bson:"deaths"`
	Message   string    `json:"message" bson:"message"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
