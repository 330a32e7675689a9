package project

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит ключ кеша: H( content || len(e1) || e1 || len(e2) || e2 ... ).
// Длина перед каждым extra убирает неоднозначность склейки; порядок extras
// должен быть детерминированным.
func Combine(content Digest, extras ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var n [8]byte
	for _, e := range extras {
		binary.LittleEndian.PutUint64(n[:], uint64(len(e)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(e)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
