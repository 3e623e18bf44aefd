package model

import "time"

// CheckInput : признаки для оценки риска диабета
type CheckInput struct {
	Pregnancies      int     `db:"pregnancies" json:"pregnancies"`
	Glucose          float64 `db:"glucose" json:"glucose"`
	BloodPressure    float64 `db:"blood_pressure" json:"blood_pressure"`
	SkinThickness    float64 `db:"skin_thickness" json:"skin_thickness"`
	Insulin          float64 `db:"insulin" json:"insulin"`
	BMI              float64 `db:"bmi" json:"bmi"`
	DiabetesPedigree float64 `db:"diabetes_pedigree" json:"diabetes_pedigree"`
	Age              int     `db:"age" json:"age"`
}

// Check : RiskScore и RiskLabel пустые, если оценка не была получена
type Check struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"user_id"`
	CheckInput
	RiskScore *float64  `db:"risk_score" json:"risk_score,omitempty"`
	RiskLabel *string   `db:"risk_label" json:"risk_label,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Prediction struct {
	Probability float64
	Label       string
}
