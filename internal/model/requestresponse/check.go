package requestresponse

import "health-tracker-server/internal/model"

// CreateCheckRequest : признаки для оценки риска
type CreateCheckRequest struct {
	Pregnancies      int     `json:"pregnancies" validate:"gte=0,lte=30" example:"2"`
	Glucose          float64 `json:"glucose" validate:"gte=0,lte=500" example:"138"`
	BloodPressure    float64 `json:"blood_pressure" validate:"gte=0,lte=300" example:"62"`
	SkinThickness    float64 `json:"skin_thickness" validate:"gte=0,lte=100" example:"35"`
	Insulin          float64 `json:"insulin" validate:"gte=0,lte=1000" example:"0"`
	BMI              float64 `json:"bmi" validate:"gte=0,lte=100" example:"33.6"`
	DiabetesPedigree float64 `json:"diabetes_pedigree" validate:"gte=0,lte=5" example:"0.127"`
	Age              int     `json:"age" validate:"required,gte=1,lte=130" example:"47"`
}

func (r CreateCheckRequest) Input() model.CheckInput {
	return model.CheckInput{
		Pregnancies:      r.Pregnancies,
		Glucose:          r.Glucose,
		BloodPressure:    r.BloodPressure,
		SkinThickness:    r.SkinThickness,
		Insulin:          r.Insulin,
		BMI:              r.BMI,
		DiabetesPedigree: r.DiabetesPedigree,
		Age:              r.Age,
	}
}

// CheckResponse : одна запись
type CheckResponse struct {
	Response *model.Check `json:"response"`
}

// ListChecksResponse : страница записей
type ListChecksResponse struct {
	Response struct {
		Checks     []*model.Check `json:"checks"`
		NextCursor string         `json:"next_cursor,omitempty"`
	} `json:"response"`
}
