package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

var codeRange = big.NewInt(900000)

// generateCode returns a 6-digit code drawn uniformly from
// [100000, 999999]. crypto/rand keeps the code unguessable within the
// validity window; there is no weaker fallback.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
