package grammar

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// HostKind classifies the host component of an authority.
type HostKind uint8

const (
	HostNone    HostKind = iota // no host
	HostIPv4                    // IPv4address
	HostIPv6                    // IP-literal holding an IPv6address, optionally with a zone
	HostName                    // reg-name that is a valid domain name
	HostInvalid                 // anything else
)

var hostKindNames = [...]string{
	HostNone:    "none",
	HostIPv4:    "ipv4",
	HostIPv6:    "ipv6",
	HostName:    "name",
	HostInvalid: "invalid",
}

func (k HostKind) String() string {
	if int(k) < len(hostKindNames) {
		return hostKindNames[k]
	}
	return "HostKind(" + strconv.Itoa(int(k)) + ")"
}

// ClassifyHost detects the kind of host s is.
// The empty string is [HostNone]. Reg-names are percent-decoded and checked
// both against the RFC 3986 reg-name charset and as DNS names.
func ClassifyHost(s string) HostKind {
	if s == "" {
		return HostNone
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return HostInvalid
		}
		// RFC 6874 zone ids are written as "%25zone" inside the brackets
		ip, err := netip.ParseAddr(Unescape(s[1 : len(s)-1]))
		if err != nil || !ip.Is6() {
			return HostInvalid
		}
		return HostIPv6
	}

	if ip, err := netip.ParseAddr(s); err == nil && ip.Is4() {
		return HostIPv4
	}

	if !isRegName(s) {
		return HostInvalid
	}
	if _, ok := dns.IsDomainName(Unescape(s)); !ok {
		return HostInvalid
	}
	return HostName
}

func isRegName(s string) bool {
	return IsEscaped(s) && strings.IndexFunc(s, func(r rune) bool {
		if r >= 0x80 {
			return true
		}
		c := byte(r)
		return !IsCharUnreserved(c) && !IsSubDelim(c) && c != '%'
	}) < 0
}
