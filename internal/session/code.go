package session

import (
	"math/rand"
	"strings"
)

const (
	codeLength   = 4
	maxCodeTries = 100
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ" // no I or O
)

// GenerateCode returns a random session code for which taken reports false.
// After maxCodeTries collisions it returns the last candidate regardless.
func GenerateCode(taken func(code string) bool) string {
	code := randomCode()
	for i := 1; i < maxCodeTries && taken(code); i++ {
		code = randomCode()
	}
	return code
}

func randomCode() string {
	var sb strings.Builder
	sb.Grow(codeLength)
	for range codeLength {
		sb.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return sb.String()
}

// NormalizeCode canonicalizes user-typed codes. It returns false when s cannot
// be a session code.
func NormalizeCode(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != codeLength {
		return "", false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(codeAlphabet, code[i]) < 0 {
			return "", false
		}
	}
	return code, true
}
