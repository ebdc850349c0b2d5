package data

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NextShort gera um identificador numérico de 9 dígitos. Não é globalmente
// único; serve para chaves curtas e legíveis.
func NextShort() string {
	return strconv.Itoa(100000000 + rand.Intn(900000000))
}

// NextLong gera um identificador globalmente único com 32 dígitos hexadecimais
// (UUID v4 sem hífens).
func NextLong() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
