package hashutil

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// KeyDigest возвращает blake3 дайджест ключа в hex (64 символа)
func KeyDigest(key string) string {
	sum := blake3.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
