package dto

// ErrorResponse representa a estrutura de resposta para erros, no formato
// esperado pelo cliente web
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// NotFoundResponse é o corpo padrão das respostas 404
func NotFoundResponse() ErrorResponse {
	return NewErrorResponse("Not Found")
}

// HealthResponse representa o corpo do health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Storage string `json:"storage"`
}
