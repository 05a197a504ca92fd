package mock

import (
	"context"
	"sync"

	"github.com/hugohenrick/chat-offline/pkg/logger"
)

// HandlerFunc sintetiza a resposta de uma regra
type HandlerFunc func(ctx context.Context, req *Request) (Response, error)

// Rule associa um matcher a um handler
type Rule struct {
	Name    string
	Match   Matcher
	Handler HandlerFunc
}

// Router percorre a tabela de regras em ordem; a primeira que casa responde.
// As regras fazem leitura-modificação-escrita de uma coleção única, então a
// execução é serializada.
type Router struct {
	mu     sync.Mutex
	rules  []Rule
	logger logger.Logger
}

// NewRouter cria um Router sem regras
func NewRouter(log logger.Logger) *Router {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Router{logger: log}
}

// Handle acrescenta uma regra ao final da tabela
func (r *Router) Handle(name string, match Matcher, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, Rule{Name: name, Match: match, Handler: handler})
}

// Rules retorna os nomes das regras na ordem de avaliação
func (r *Router) Rules() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Route executa a primeira regra que casa. O segundo retorno é false quando
// nenhuma regra casa e a requisição deve seguir para a rede.
func (r *Router) Route(ctx context.Context, req *Request) (Response, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range r.rules {
		if !rule.Match(req) {
			continue
		}

		resp, err := rule.Handler(ctx, req)
		if err != nil {
			r.logger.Error("Erro ao executar regra", "rule", rule.Name, "method", req.Method, "path", req.Path, "error", err)
			return InternalError(err), true
		}
		r.logger.Debug("Requisição simulada", "rule", rule.Name, "method", req.Method, "path", req.Path, "status", resp.Status)
		return resp, true
	}
	return Response{}, false
}
