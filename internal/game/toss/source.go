package toss

import (
	"crypto/rand"
	"math/big"
)

// Source produces random integers.
type Source interface {
	// Intn returns a value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn returns a uniformly distributed int in [0, n).
//
// Precondition: n > 0. Panics with "toss: Intn called with n <= 0" otherwise.
// Panics if crypto/rand fails.
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("toss: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("toss: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}
