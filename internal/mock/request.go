package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Request é a visão da requisição interceptada usada pelas regras
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// NewRequest lê o corpo da requisição HTTP uma única vez e monta o Request
func NewRequest(r *http.Request) (*Request, error) {
	var body []byte
	if r.Body != nil && r.Body != http.NoBody {
		data, err := io.ReadAll(r.Body)
		r.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler corpo da requisição: %w", err)
		}
		body = data
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	return &Request{
		Method: strings.ToUpper(method),
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	}, nil
}

// Bind decodifica o corpo JSON em v, que deve ser um ponteiro. Corpo
// ausente ou inválido, inclusive com tipos incompatíveis, retorna false e
// deixa v intacto, equivalente a um corpo {}.
func (r *Request) Bind(v interface{}) bool {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return false
	}
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return false
	}

	decoded := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(r.Body, decoded.Interface()); err != nil {
		return false
	}
	target.Elem().Set(decoded.Elem())
	return true
}

// LastSegment retorna o último segmento do caminho
func (r *Request) LastSegment() string {
	path := r.Path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
