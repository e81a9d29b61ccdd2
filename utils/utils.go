package utils

import (
	"math/rand"
	"time"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateDiscountCode generates a random discount token code
func GenerateDiscountCode(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}
