package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro do servidor stub
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrUnknownGroup   = "VAL_002" // Agrupamento de custos desconhecido
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Recursos
	ErrFlowerNotFound = "RES_001" // Flor sem compras registradas
	ErrNoData         = "RES_002" // Catálogo nunca atualizado
	ErrRouteNotFound  = "RES_003" // Rota inexistente
	ErrForbidden      = "RES_004" // Rota administrativa fora do loopback

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrUpdateInProgress = "SRV_002" // Atualização já em andamento
	ErrInjectedFailure  = "SRV_003" // Falha simulada
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrUnknownGroup:     http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrFlowerNotFound:   http.StatusNotFound,
	ErrNoData:           http.StatusNotFound,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrForbidden:        http.StatusForbidden,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrUpdateInProgress: http.StatusInternalServerError,
	ErrInjectedFailure:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
