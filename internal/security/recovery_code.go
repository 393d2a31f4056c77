package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet without the lookalikes 0/O and 1/I so codes survive being read
// aloud or retyped from paper.
const recoveryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const recoveryCodePrefix = "GLOW"

const recoveryCodeLength = 12

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// GenerateRecoveryCode produces a formatted one-time account recovery code,
// e.g. GLOW-K3QF-8N2W-PMXT.
func GenerateRecoveryCode() (string, error) {
	value, err := RandomString(recoveryCodeLength, recoveryCodeAlphabet)
	if err != nil {
		return "", err
	}
	return formatRecoveryCode(value), nil
}

// NormalizeRecoveryCode reformats user input (any case, with or without
// prefix, dashes or spaces) into the canonical form so bcrypt comparison sees
// the exact generated string. Input that cannot be a code is returned
// uppercased and trimmed, which will simply fail the comparison.
func NormalizeRecoveryCode(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.TrimPrefix(normalized, recoveryCodePrefix)
	if len(normalized) != recoveryCodeLength {
		return strings.ToUpper(strings.TrimSpace(raw))
	}
	return formatRecoveryCode(normalized)
}

func formatRecoveryCode(value string) string {
	return fmt.Sprintf("%s-%s-%s-%s", recoveryCodePrefix, value[:4], value[4:8], value[8:12])
}
