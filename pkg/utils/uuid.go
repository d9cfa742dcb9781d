package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera identificadores curtos para execuções de jobs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// NewUUID gera o identificador dos registros persistidos
func NewUUID() string {
	return uuid.NewString()
}
