package utils

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

var uuidPattern = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// ExtractUUID procura o primeiro UUID presente em um texto livre.
// Retorna false quando nenhum UUID é encontrado.
func ExtractUUID(s string) (string, bool) {
	match := uuidPattern.FindString(s)
	if match == "" {
		return "", false
	}
	return match, true
}
