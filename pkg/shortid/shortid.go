// Package shortid генерирует короткие непрозрачные идентификаторы:
// случайный UUIDv4, записанный в алфавите flickrBase58.
package shortid

import (
	"math/big"

	"github.com/google/uuid"
)

// Alphabet без похожих символов (0, O, I, l).
const Alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// Length фиксированная длина идентификатора: ceil(128 / log2(58)).
const Length = 22

var base = big.NewInt(int64(len(Alphabet)))

// New возвращает новый идентификатор.
func New() string {
	return FromUUID(uuid.New())
}

// FromUUID кодирует u, дополняя результат слева до Length символов.
func FromUUID(u uuid.UUID) string {
	n := new(big.Int).SetBytes(u[:])
	mod := new(big.Int)

	buf := make([]byte, 0, Length)
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		buf = append(buf, Alphabet[mod.Int64()])
	}
	for len(buf) < Length {
		buf = append(buf, Alphabet[0])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
