package requestresponse

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"for example: invalid email or password"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse : состояние зависимостей
type HealthResponse struct {
	Response struct {
		Status   string `json:"status" example:"ok"`
		Database string `json:"database" example:"ok"`
		Redis    string `json:"redis" example:"ok"`
	} `json:"response"`
}

// DeletedResponse : подтверждение удаления
type DeletedResponse struct {
	Response struct {
		ID      string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
		Deleted bool   `json:"deleted" example:"true"`
	} `json:"response"`
}
