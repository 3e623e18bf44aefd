package util

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateRandomHex : hex-строка из byteLength случайных байт (длина строки 2*byteLength)
func GenerateRandomHex(byteLength int) (string, error) {
	bytes := make([]byte, byteLength)

	if _, err := rand.Read(bytes); err != nil {
		return "", LogError("[util] ошибка генерации токена", err)
	}

	return hex.EncodeToString(bytes), nil
}

// HashToken : SHA-256 в hex, под этим ключом токены хранятся в БД и Redis
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
