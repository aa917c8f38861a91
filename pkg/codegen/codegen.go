// Package codegen genera los códigos cortos visibles de cliente: dos letras
// mayúsculas seguidas de cuatro dígitos (ej. "AB1234").
package codegen

import (
	"crypto/rand"
	"math/big"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// New devuelve un código aleatorio con formato LLDDDD.
func New() string {
	buf := make([]byte, 6)
	for i := 0; i < 2; i++ {
		buf[i] = letters[randIndex(len(letters))]
	}
	for i := 2; i < 6; i++ {
		buf[i] = digits[randIndex(len(digits))]
	}
	return string(buf)
}

// Valid informa si s tiene el formato de código de cliente.
func Valid(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	for i := 2; i < 6; i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand solo falla si el sistema no tiene entropía; no hay
		// degradación razonable para un generador de códigos.
		panic(err)
	}
	return int(v.Int64())
}
