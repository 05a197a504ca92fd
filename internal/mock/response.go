package mock

import (
	"encoding/json"
	"net/http"
)

// Response é o corpo e o status sintetizados por uma regra
type Response struct {
	Status int
	Body   interface{}
}

// JSON cria uma resposta com o status e o corpo informados
func JSON(status int, body interface{}) Response {
	return Response{Status: status, Body: body}
}

// OK cria uma resposta 200
func OK(body interface{}) Response {
	return JSON(http.StatusOK, body)
}

// Encode serializa o corpo da resposta
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r.Body)
}

// errorBody é o formato de erro esperado pelo cliente
type errorBody struct {
	Detail string `json:"detail"`
}

// NotFound é a resposta padrão para recursos inexistentes
func NotFound() Response {
	return JSON(http.StatusNotFound, errorBody{Detail: "Not Found"})
}

// InternalError converte um erro inesperado em resposta 500
func InternalError(err error) Response {
	return JSON(http.StatusInternalServerError, errorBody{Detail: err.Error()})
}
