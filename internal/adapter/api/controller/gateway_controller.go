package controller

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/chat-offline/internal/adapter/api/dto"
	"github.com/hugohenrick/chat-offline/internal/mock"
	"github.com/hugohenrick/chat-offline/pkg/logger"
)

// GatewayController recebe todas as requisições sem rota própria no gin.
// Com upstream configurado, o tráfego passa por um proxy reverso cujo
// transporte é o mock.Transport; sem upstream, só a API simulada responde.
type GatewayController struct {
	router *mock.Router
	proxy  *httputil.ReverseProxy
	logger logger.Logger
}

// NewGatewayController cria o gateway. upstreamURL vazio desativa o proxy.
func NewGatewayController(router *mock.Router, upstreamURL string, log logger.Logger) (*GatewayController, error) {
	c := &GatewayController{router: router, logger: log}
	if upstreamURL == "" {
		return c, nil
	}

	target, err := url.Parse(upstreamURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("UPSTREAM_URL inválida: %q", upstreamURL)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.Transport = mock.NewTransport(router, http.DefaultTransport)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("Erro ao encaminhar requisição", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, `{"detail":"Bad Gateway"}`)
	}
	c.proxy = proxy
	return c, nil
}

// Serve atende a requisição pela API simulada ou pelo upstream
func (c *GatewayController) Serve(ctx *gin.Context) {
	if c.proxy != nil {
		c.proxy.ServeHTTP(ctx.Writer, ctx.Request)
		return
	}

	req, err := mock.NewRequest(ctx.Request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	resp, handled := c.router.Route(ctx.Request.Context(), req)
	if !handled {
		ctx.JSON(http.StatusNotFound, dto.NotFoundResponse())
		return
	}

	body, err := resp.Encode()
	if err != nil {
		c.logger.Error("Erro ao serializar resposta simulada", "path", req.Path, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}
	ctx.Data(resp.Status, "application/json", body)
}
