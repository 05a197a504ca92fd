package mock

import "strings"

// Matcher decide se uma regra se aplica à requisição
type Matcher func(req *Request) bool

// Method casa requisições com o método HTTP informado
func Method(method string) Matcher {
	method = strings.ToUpper(method)
	return func(req *Request) bool {
		return req.Method == method
	}
}

// Exact casa o caminho exato
func Exact(path string) Matcher {
	return func(req *Request) bool {
		return req.Path == path
	}
}

// Prefix casa caminhos que começam com prefix
func Prefix(prefix string) Matcher {
	return func(req *Request) bool {
		return strings.HasPrefix(req.Path, prefix)
	}
}

// Contains casa caminhos que contêm fragment em qualquer posição
func Contains(fragment string) Matcher {
	return func(req *Request) bool {
		return strings.Contains(req.Path, fragment)
	}
}

// All casa quando todos os matchers casam
func All(matchers ...Matcher) Matcher {
	return func(req *Request) bool {
		for _, m := range matchers {
			if !m(req) {
				return false
			}
		}
		return true
	}
}

// On combina método e caminho, a forma usada pelas rotas
func On(method string, path Matcher) Matcher {
	return All(Method(method), path)
}
