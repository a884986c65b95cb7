package grammar

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/types"
	"github.com/ghettovoice/gourl/internal/util"
)

// URIParts holds the components captured by [SplitURI].
// A component that was not captured is absent, a captured empty component is Some("").
type URIParts struct {
	Scheme    types.Opt
	Authority types.Opt
	Path      string
	Query     types.Opt
	Fragment  types.Opt
}

// SplitURI splits a URI reference as the regular expression of RFC 3986 Appendix B does:
//
//	^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?
//
// Every input matches, so the function never fails.
func SplitURI(s string) URIParts {
	var p URIParts

	if i := util.IndexAny(s, ":/?#"); i > 0 && i < len(s) && s[i] == ':' {
		p.Scheme = types.Some(s[:i])
		s = s[i+1:]
	}

	if strings.HasPrefix(s, "//") {
		s = s[2:]
		i := util.IndexAny(s, "/?#")
		p.Authority = types.Some(s[:i])
		s = s[i:]
	}

	i := util.IndexAny(s, "?#")
	p.Path = s[:i]
	s = s[i:]

	if strings.HasPrefix(s, "?") {
		i = strings.IndexByte(s, '#')
		if i < 0 {
			i = len(s)
		}
		p.Query = types.Some(s[1:i])
		s = s[i:]
	}

	if strings.HasPrefix(s, "#") {
		p.Fragment = types.Some(s[1:])
	}
	return p
}

// AuthorityParts holds the components captured by [SplitAuthority].
type AuthorityParts struct {
	Userinfo types.Opt
	Host     types.Opt
	Port     types.Opt
}

// SplitAuthority splits an authority into userinfo, host and port,
// following the capture groups of
//
//	^(([^@]+)@)?([^:]+)?(:(.*))?
//
// with one extension: a host starting with "[" runs through the closing "]"
// when the bracket is followed by ":" or the end of input, so IPv6 literals stay whole.
func SplitAuthority(s string) AuthorityParts {
	var p AuthorityParts

	if i := strings.IndexByte(s, '@'); i > 0 {
		p.Userinfo = types.Some(s[:i])
		s = s[i+1:]
	}

	i := hostEnd(s)
	if i > 0 {
		p.Host = types.Some(s[:i])
	}
	s = s[i:]

	if strings.HasPrefix(s, ":") {
		p.Port = types.Some(s[1:])
	}
	return p
}

func hostEnd(s string) int {
	if strings.HasPrefix(s, "[") {
		if i := strings.IndexByte(s, ']'); i > 0 && (i+1 == len(s) || s[i+1] == ':') {
			return i + 1
		}
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return i
	}
	return len(s)
}

// SplitUserinfo splits userinfo on the first colon into user and password.
// Without a colon the password is absent.
func SplitUserinfo(s string) (user, passwd types.Opt) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return types.Some(s[:i]), types.Some(s[i+1:])
	}
	return types.Some(s), types.None()
}
