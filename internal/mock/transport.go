package mock

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultPrefix delimita os caminhos que podem ser simulados
const DefaultPrefix = "/api"

// Transport é um http.RoundTripper que responde as chamadas da API a partir
// do Router e delega o restante para Next
type Transport struct {
	Router *Router

	// Next recebe as requisições não simuladas. Nil usa http.DefaultTransport.
	Next http.RoundTripper

	// Prefix dos caminhos interceptados. Vazio usa DefaultPrefix.
	Prefix string
}

// NewTransport cria um Transport que delega para next
func NewTransport(router *Router, next http.RoundTripper) *Transport {
	return &Transport{Router: router, Next: next}
}

func (t *Transport) next() http.RoundTripper {
	if t.Next != nil {
		return t.Next
	}
	return http.DefaultTransport
}

func (t *Transport) prefix() string {
	if t.Prefix != "" {
		return t.Prefix
	}
	return DefaultPrefix
}

// RoundTrip implementa http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !strings.HasPrefix(req.URL.Path, t.prefix()) {
		return t.next().RoundTrip(req)
	}

	mreq, err := NewRequest(req)
	if err != nil {
		return nil, err
	}

	resp, handled := t.Router.Route(req.Context(), mreq)
	if !handled {
		// O corpo já foi consumido, então a requisição delegada recebe uma cópia
		out := req.Clone(req.Context())
		if mreq.Body != nil {
			body := mreq.Body
			out.Body = io.NopCloser(bytes.NewReader(body))
			out.GetBody = func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(body)), nil
			}
			out.ContentLength = int64(len(body))
		}
		return t.next().RoundTrip(out)
	}

	return buildResponse(req, resp)
}

func buildResponse(req *http.Request, resp Response) (*http.Response, error) {
	body, err := resp.Encode()
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar resposta simulada: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status)),
		StatusCode:    resp.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// Install troca o transporte do cliente por um Transport que delega para o
// transporte anterior. Retorna false se o cliente já estava instalado.
func Install(client *http.Client, router *Router) bool {
	if _, ok := client.Transport.(*Transport); ok {
		return false
	}
	client.Transport = NewTransport(router, client.Transport)
	return true
}
