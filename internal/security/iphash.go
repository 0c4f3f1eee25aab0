// Package security hashes client addresses before they are stored.
package security

import (
	"encoding/hex"
	"net"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// IPHasher produces stable, keyed digests of client IP addresses so that a
// visitor can update their own rating without the address being stored.
type IPHasher struct {
	key [32]byte
}

// NewIPHasher derives a 256-bit BLAKE2b key from secret. Secrets of any
// length are accepted; length policy lives in config validation.
func NewIPHasher(secret string) *IPHasher {
	return &IPHasher{key: blake2b.Sum256([]byte(secret))}
}

// Hash returns the hex encoded keyed digest of ip. IPv4 addresses written
// in IPv4-mapped IPv6 form hash the same as their dotted form.
func (h *IPHasher) Hash(ip string) string {
	mac, err := blake2b.New256(h.key[:])
	if err != nil {
		// Only returned for keys longer than 64 bytes.
		panic("security: invalid blake2b key: " + err.Error())
	}
	mac.Write([]byte(normalizeIP(ip)))
	return hex.EncodeToString(mac.Sum(nil))
}

func normalizeIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if parsed := net.ParseIP(ip); parsed != nil {
		return parsed.String()
	}
	return ip
}
