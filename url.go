package gourl

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/ioutil"
	"github.com/ghettovoice/gourl/internal/util"
	"github.com/ghettovoice/gourl/query"
)

// URL is a parsed URL reference.
//
// Components are kept exactly as captured by [Parse] and written back as is by [Build],
// no percent-encoding is applied except for the query.
// The zero value is an empty relative reference.
type URL struct {
	Scheme   Opt
	Username Opt
	Password Opt // requires Username
	Hostname Opt
	Port     Opt // digits, not validated
	Path     string
	Query    query.Query // nil when absent
	Fragment Opt
}

const redactedPasswd = "xxxxx"

// Get returns the value of a field.
// The path is always present, unknown fields are absent.
func (u URL) Get(f Field) Opt {
	switch f {
	case FieldScheme:
		return u.Scheme
	case FieldHostname:
		return u.Hostname
	case FieldUsername:
		return u.Username
	case FieldPassword:
		return u.Password
	case FieldPort:
		return u.Port
	case FieldPath:
		return Some(u.Path)
	case FieldFragment:
		return u.Fragment
	default:
		return None()
	}
}

// With returns a copy of u with the field set to v.
// Setting an unknown field returns an unchanged copy.
func (u URL) With(f Field, v string) URL {
	return u.set(f, Some(v))
}

// Without returns a copy of u with the field removed.
// The path is reset to an empty string.
func (u URL) Without(f Field) URL {
	return u.set(f, None())
}

func (u URL) set(f Field, v Opt) URL {
	u2 := u.Clone()
	switch f {
	case FieldScheme:
		u2.Scheme = v
	case FieldHostname:
		u2.Hostname = v
	case FieldUsername:
		u2.Username = v
	case FieldPassword:
		u2.Password = v
	case FieldPort:
		u2.Port = v
	case FieldPath:
		u2.Path = v.Value()
	case FieldFragment:
		u2.Fragment = v
	}
	return u2
}

// WithPath returns a copy of u with the given path.
func (u URL) WithPath(p string) URL { return u.set(FieldPath, Some(p)) }

// WithQuery returns a copy of u holding a copy of q.
func (u URL) WithQuery(q query.Query) URL {
	u2 := u
	u2.Query = q.Clone()
	return u2
}

// WithoutQuery returns a copy of u without the query.
func (u URL) WithoutQuery() URL {
	u2 := u
	u2.Query = nil
	return u2
}

// Clone returns a deep copy of u.
func (u URL) Clone() URL {
	u2 := u
	u2.Query = u.Query.Clone()
	return u2
}

// Authority returns the rendered authority, absent when
// username, password, hostname and port are all absent.
func (u URL) Authority() Opt {
	if !u.hasAuthority() {
		return None()
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.renderAuthority(sb) //nolint:errcheck
	return Some(sb.String())
}

// Userinfo returns "username[:password]", absent when neither is set.
func (u URL) Userinfo() Opt {
	if !u.Username.IsSet() && !u.Password.IsSet() {
		return None()
	}
	if p, ok := u.Password.Get(); ok {
		return Some(u.Username.Value() + ":" + p)
	}
	return u.Username
}

// IsAbs reports whether the URL has a scheme.
func (u URL) IsAbs() bool { return u.Scheme.IsSet() }

// PortNumber parses the port as a 16-bit unsigned number.
func (u URL) PortNumber() (uint16, bool) {
	p, ok := u.Port.Get()
	if !ok || p == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(p, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// HostKind classifies the hostname.
func (u URL) HostKind() HostKind { return grammar.ClassifyHost(u.Hostname.Value()) }

func (u URL) hasAuthority() bool {
	return u.Username.IsSet() || u.Password.IsSet() || u.Hostname.IsSet() || u.Port.IsSet()
}

// Validate checks that u can be built.
// Every problem is reported, each of them wraps [ErrValidation].
func (u URL) Validate() error {
	_, err := u.validate()
	return errtrace.Wrap(err)
}

// IsValid reports whether u can be built.
func (u URL) IsValid() bool { return u.Validate() == nil }

// validate returns the encoded query on success.
func (u URL) validate() (string, error) {
	var errs []error
	if u.Password.IsSet() && !u.Username.IsSet() {
		errs = append(errs, errorutil.NewValidationError("password is set without username"))
	}
	qs, err := query.Encode(u.Query)
	if err != nil {
		errs = append(errs, err)
	}
	if err := errorutil.JoinPrefix("invalid URL", errs...); err != nil {
		return "", errtrace.Wrap(err)
	}
	return qs, nil
}

// RenderTo writes the URL to w, see [Build].
func (u URL) RenderTo(w io.Writer) (num int, err error) {
	qs, err := u.validate()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	scheme, hasScheme := u.Scheme.Get()
	hasAuth := u.hasAuthority()

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteIf(hasScheme, scheme, ":")
	cw.WriteIf(hasScheme || hasAuth, "//")
	if hasAuth {
		cw.Call(u.renderAuthority)
	}
	cw.WriteStrings(u.Path)
	cw.WriteIf(qs != "", "?", qs)
	if frag, ok := u.Fragment.Get(); ok {
		cw.WriteStrings("#", frag)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u URL) renderAuthority(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if ui, ok := u.Userinfo().Get(); ok {
		cw.WriteStrings(ui, "@")
	}
	cw.WriteStrings(u.Hostname.Value())
	if p, ok := u.Port.Get(); ok {
		cw.WriteStrings(":", p)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the URL string or an empty string if it can not be built.
func (u URL) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if _, err := u.RenderTo(sb); err != nil {
		return ""
	}
	return sb.String()
}

// String returns the URL string or an empty string if it can not be built.
func (u URL) String() string { return u.Render() }

// Redacted is like [URL.String] but replaces the password with "xxxxx".
func (u URL) Redacted() string {
	if u.Password.IsSet() {
		u.Password = Some(redactedPasswd)
	}
	return u.Render()
}

// Format implements [fmt.Formatter].
// %s and %q print the URL string, other verbs print the struct fields.
func (u URL) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URL
		type URL hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), URL(u))
		return
	}
}

// LogValue implements [slog.LogValuer].
// Only present components are logged, the password is redacted.
func (u URL) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 8)
	add := func(k string, o Opt) {
		if v, ok := o.Get(); ok {
			attrs = append(attrs, slog.String(k, v))
		}
	}
	add("scheme", u.Scheme)
	add("username", u.Username)
	if u.Password.IsSet() {
		attrs = append(attrs, slog.String("password", redactedPasswd))
	}
	add("hostname", u.Hostname)
	add("port", u.Port)
	if u.Path != "" {
		attrs = append(attrs, slog.String("path", u.Path))
	}
	if len(u.Query) > 0 {
		attrs = append(attrs, slog.Any("query", u.Query))
	}
	add("fragment", u.Fragment)
	return slog.GroupValue(attrs...)
}

// Equal compares u with another URL or *URL component by component.
// Query fields must match in order.
func (u URL) Equal(val any) bool {
	var other URL
	switch v := val.(type) {
	case URL:
		other = v
	case *URL:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.Scheme.Equal(other.Scheme) &&
		u.Username.Equal(other.Username) &&
		u.Password.Equal(other.Password) &&
		u.Hostname.Equal(other.Hostname) &&
		u.Port.Equal(other.Port) &&
		u.Path == other.Path &&
		u.Query.Equal(other.Query) &&
		u.Fragment.Equal(other.Fragment)
}

// StdURL builds u and parses the result with [net/url.Parse].
func (u URL) StdURL() (*url.URL, error) {
	s, err := Build(u)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(url.Parse(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (u URL) MarshalText() ([]byte, error) {
	s, err := Build(u)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	*u = ParseString(string(text))
	return nil
}
