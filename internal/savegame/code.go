package savegame

import "math/rand/v2"

// codeAlphabet excludes visually confusable characters (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the fixed save code length.
const CodeLength = 8

// GenerateCode returns a random save code. Codes are not checked for
// uniqueness; the index tolerates duplicates and the collision odds
// over a 32-character alphabet are negligible for a local store.
func GenerateCode() string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}
