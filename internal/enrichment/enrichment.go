package enrichment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/client-directory/internal/validation"
)

type Kind string

const (
	KindCNPJ Kind = validation.FieldCNPJ
	KindCEP  Kind = validation.FieldCEP
)

// Prefill maps form field names to values suggested by a lookup. Only
// fields the service actually returned are present.
type Prefill map[string]string

var (
	ErrNotFound    = errors.New("lookup: no match")
	ErrUnavailable = errors.New("lookup: service unavailable")
)

// LookupError scopes a failed lookup to the form field that triggered it.
type LookupError struct {
	Field string
	Err   error // ErrNotFound or ErrUnavailable
	Cause error
}

func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Field, e.Err, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// Message is the text shown next to the field.
func (e *LookupError) Message() string {
	switch e.Field {
	case validation.FieldCNPJ:
		return "Erro ao buscar dados do CNPJ. Verifique o valor."
	case validation.FieldCEP:
		return "Erro ao buscar dados do CEP. Verifique o valor."
	}
	return "Erro ao buscar dados."
}

// Cache stores successful lookups. Implementations must treat every
// failure as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (Prefill, bool)
	Set(ctx context.Context, key string, p Prefill)
}

type Options struct {
	CNPJBaseURL string
	CEPBaseURL  string
	Timeout     time.Duration
	HTTPClient  *http.Client
	Cache       Cache
	Logger      *zap.Logger
}

// Client queries the tax-id and postal-code services. Every call is a
// single attempt; there is no retry.
type Client struct {
	cnpjURL string
	cepURL  string
	http    *http.Client
	cache   Cache
	log     *zap.Logger
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		cnpjURL: strings.TrimRight(opts.CNPJBaseURL, "/"),
		cepURL:  strings.TrimRight(opts.CEPBaseURL, "/"),
		http:    hc,
		cache:   opts.Cache,
		log:     logger,
	}
}

// Lookup dispatches on kind. A malformed key yields validation.Errors
// without any network call.
func (c *Client) Lookup(ctx context.Context, kind Kind, key string) (Prefill, error) {
	switch kind {
	case KindCNPJ:
		return c.LookupCNPJ(ctx, key)
	case KindCEP:
		return c.LookupCEP(ctx, key)
	}
	return nil, fmt.Errorf("lookup: unknown kind %q", kind)
}

func (c *Client) LookupCNPJ(ctx context.Context, cnpj string) (Prefill, error) {
	if msg := validation.ValidateField(validation.FieldCNPJ, cnpj); msg != "" {
		return nil, validation.Errors{validation.FieldCNPJ: msg}
	}
	return c.cached(ctx, KindCNPJ, cnpj, c.fetchCNPJ)
}

func (c *Client) LookupCEP(ctx context.Context, cep string) (Prefill, error) {
	if msg := validation.ValidateField(validation.FieldCEP, cep); msg != "" {
		return nil, validation.Errors{validation.FieldCEP: msg}
	}
	return c.cached(ctx, KindCEP, cep, c.fetchCEP)
}

type fetchFunc func(ctx context.Context, key string) (Prefill, error)

func (c *Client) cached(ctx context.Context, kind Kind, key string, fetch fetchFunc) (Prefill, error) {
	cacheKey := fmt.Sprintf("lookup:%s:%s", kind, key)

	if c.cache != nil {
		if p, ok := c.cache.Get(ctx, cacheKey); ok {
			return p, nil
		}
	}

	p, err := fetch(ctx, key)
	if err != nil {
		c.log.Warn("lookup failed",
			zap.String("kind", string(kind)),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(ctx, cacheKey, p)
	}
	return p, nil
}

func (p Prefill) set(field, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		p[field] = value
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
