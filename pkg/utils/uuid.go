package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRequestID gera o valor do cabeçalho X-Request-ID
func GenerateRequestID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
