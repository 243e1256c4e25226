package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/client-directory/internal/enrichment"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
	"github.com/BruksfildServices01/client-directory/internal/httpresp"
	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type Enricher interface {
	Lookup(ctx context.Context, kind enrichment.Kind, key string) (enrichment.Prefill, error)
}

type LookupHandler struct {
	enricher Enricher
	log      *zap.Logger
}

func NewLookupHandler(e Enricher, log *zap.Logger) *LookupHandler {
	return &LookupHandler{enricher: e, log: log}
}

type LookupResponse struct {
	Fields enrichment.Prefill `json:"fields"`
}

func (h *LookupHandler) CNPJ(c *gin.Context) {
	h.lookup(c, enrichment.KindCNPJ)
}

func (h *LookupHandler) CEP(c *gin.Context) {
	h.lookup(c, enrichment.KindCEP)
}

func (h *LookupHandler) lookup(c *gin.Context, kind enrichment.Kind) {
	p, err := h.enricher.Lookup(c.Request.Context(), kind, c.Param("key"))
	if err == nil {
		httpresp.OK(c, LookupResponse{Fields: p})
		return
	}

	var verrs validation.Errors
	var le *enrichment.LookupError
	switch {
	case errors.As(err, &verrs):
		httperr.Validation(c, verrs)
	case errors.As(err, &le) && errors.Is(err, enrichment.ErrNotFound):
		httperr.WriteFields(c, http.StatusNotFound, httperr.CodeLookupNotFound, "Nenhum registro encontrado.",
			map[string]string{le.Field: le.Message()})
	case errors.As(err, &le):
		httperr.BadGateway(c, httperr.CodeLookupFailed, "Serviço de consulta indisponível.",
			map[string]string{le.Field: le.Message()})
	default:
		h.log.Error("lookup failure", zap.String("kind", string(kind)), zap.Error(err))
		httperr.Internal(c, httperr.CodeLookupFailed, "Erro interno. Tente novamente.")
	}
}
