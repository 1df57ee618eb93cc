package validation

import (
	"net/netip"
	"strings"
)

// reservedRanges are IPv4 blocks that are neither private nor loopback but
// still must not be probed (CGNAT, IETF assignments, TEST-NETs).
var reservedRanges = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
}

// IPValidator rejects IP-literal hosts that point into private or reserved
// address space. Hostnames pass through untouched: no DNS resolution happens
// at validation time, so a name resolving to a private address is caught by
// nothing here, only limited by the prober's own failure classification.
type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

func (v *IPValidator) ValidateHost(host string) error {
	addr, err := netip.ParseAddr(stripPort(host))
	if err != nil {
		// Not an IP literal.
		return nil
	}
	return v.validateIP(addr)
}

func (v *IPValidator) validateIP(addr netip.Addr) error {
	if addr.Is4In6() {
		addr = netip.AddrFrom4(addr.As4())
	}

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, p := range reservedRanges {
		if p.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}

	return nil
}

// stripPort removes an optional :port from a URL host, handling bracketed
// IPv6 literals.
func stripPort(host string) string {
	if strings.HasPrefix(host, "[") {
		if idx := strings.LastIndex(host, "]"); idx != -1 {
			return host[1:idx]
		}
		return strings.TrimPrefix(host, "[")
	}
	if idx := strings.LastIndex(host, ":"); idx != -1 && strings.Count(host, ":") == 1 {
		return host[:idx]
	}
	return host
}
