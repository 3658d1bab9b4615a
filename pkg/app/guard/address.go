package guard

import (
	"net"
	"strings"
)

// ResolveAddress picks the client address: the first entry of the
// forwarded-for chain, then the real-address header, then the transport peer.
func ResolveAddress(forwardedFor, realIP, peer string, trustHeaders bool) string {
	if trustHeaders {
		if first, _, _ := strings.Cut(forwardedFor, ","); strings.TrimSpace(first) != "" {
			return normalizeAddress(first)
		}
		if v := strings.TrimSpace(realIP); v != "" {
			return normalizeAddress(v)
		}
	}
	return normalizeAddress(peer)
}

func normalizeAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	addr = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	if ip := net.ParseIP(addr); ip != nil {
		return ip.String()
	}
	return addr
}
