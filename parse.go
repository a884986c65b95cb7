package gourl

import (
	"fmt"
	"reflect"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
	"github.com/ghettovoice/gourl/query"
)

// Parse parses a URL from a string-like value.
//
// Accepted inputs are strings, byte slices, any type based on them,
// [fmt.Stringer] implementations (including [*net/url.URL]), [URL] and non-nil [*URL].
// Any other value, nil included, fails with [ErrInvalidInput].
// Malformed URLs never fail, see [ParseString].
func Parse(v any) (URL, error) {
	switch v := v.(type) {
	case URL:
		return v.Clone(), nil
	case *URL:
		if v == nil {
			return URL{}, errtrace.Wrap(errorutil.NewInvalidInputError("got nil *URL"))
		}
		return v.Clone(), nil
	}

	s, err := toString(v)
	if err != nil {
		return URL{}, errtrace.Wrap(err)
	}
	return ParseString(s), nil
}

func toString(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", errtrace.Wrap(errorutil.NewInvalidInputError("got nil"))
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", errtrace.Wrap(errorutil.NewInvalidInputError("got nil %T", v))
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return string(rv.Bytes()), nil
	}
	return "", errtrace.Wrap(errorutil.NewInvalidInputError("expected string-like value, got %T", v))
}

// ParseString parses s leniently into its components.
//
// The reference is split as the regular expression of RFC 3986 Appendix B does,
// then the authority, when present, into userinfo, hostname and port.
// Userinfo is split on its first colon into username and password.
// Unmatched components are absent, matched but empty ones are present and empty.
// A query is decoded with [query.Decode], components are not percent-decoded.
func ParseString(s string) URL {
	p := grammar.SplitURI(s)
	u := URL{
		Scheme:   p.Scheme,
		Path:     p.Path,
		Fragment: p.Fragment,
	}
	if q, ok := p.Query.Get(); ok {
		u.Query = query.Decode(q)
	}

	a := grammar.SplitAuthority(p.Authority.Value())
	u.Hostname = a.Host
	u.Port = a.Port
	if ui, ok := a.Userinfo.Get(); ok {
		u.Username, u.Password = grammar.SplitUserinfo(ui)
	}
	return u
}

// Build renders u as a string.
//
// It fails with [ErrValidation] when the password is set without a username
// or the query can not be encoded.
// "//" is written whenever a scheme or an authority is present, so
// a mailto URL builds as "mailto://joe@example.com".
func Build(u URL) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if _, err := u.RenderTo(sb); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}
