package blumenladenclient

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// ErrEmptyBody indica uma resposta 2xx cujo corpo é null onde se espera um objeto
var ErrEmptyBody = errors.New("empty response body")

// Kind classifica a falha de uma requisição
type Kind int

const (
	// KindTransport: a requisição não foi concluída (rede, DNS, contexto cancelado)
	KindTransport Kind = iota + 1
	// KindStatus: o serviço respondeu fora da faixa 2xx
	KindStatus
	// KindDecode: o corpo não é o JSON esperado
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

type RequestError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Kind       Kind
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("blumenladen %s: %s %s (%d): %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("blumenladen %s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Cause permite que errors.Cause chegue ao erro original
func (e *RequestError) Cause() error { return e.Err }

// KindOf devolve o tipo da falha quando err vem deste pacote
func KindOf(err error) (Kind, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind, true
	}
	return 0, false
}

func emptyBody(op, method string, endpoint *url.URL) error {
	return &RequestError{Op: op, Method: method, URL: endpoint.String(), Kind: KindDecode, Err: ErrEmptyBody}
}
