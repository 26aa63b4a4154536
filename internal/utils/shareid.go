package utils

import (
	"crypto/rand"
	"math/big"
)

const shareIDCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewShareID returns a random alphanumeric token of the given length. It does
// not check uniqueness; the caller relies on the outfits.share_id unique index
// and retries on conflict.
func NewShareID(length int) string {
	max := big.NewInt(int64(len(shareIDCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = shareIDCharset[n.Int64()]
	}
	return string(buf)
}
