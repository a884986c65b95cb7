package gourl

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/util"
)

// Field names a string component of a [URL].
// The query is not a Field, it has dedicated methods.
type Field uint8

const (
	FieldScheme Field = iota + 1
	FieldHostname
	FieldUsername
	FieldPassword
	FieldPort
	FieldPath
	FieldFragment
)

var fieldNames = [...]string{
	FieldScheme:   "scheme",
	FieldHostname: "hostname",
	FieldUsername: "username",
	FieldPassword: "password",
	FieldPort:     "port",
	FieldPath:     "path",
	FieldFragment: "fragment",
}

func (f Field) String() string {
	if f.IsValid() {
		return fieldNames[f]
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

// IsValid reports whether f is one of the known fields.
func (f Field) IsValid() bool { return f >= FieldScheme && f <= FieldFragment }

// ParseField returns the field with the given case-insensitive name.
// "host" and "user" are accepted as short forms of "hostname" and "username".
func ParseField(name string) (Field, error) {
	switch n := util.LCase(name); n {
	case "host":
		return FieldHostname, nil
	case "user":
		return FieldUsername, nil
	default:
		for f := FieldScheme; f <= FieldFragment; f++ {
			if fieldNames[f] == n {
				return f, nil
			}
		}
	}
	return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown URL field %q", name))
}

// MarshalText implements [encoding.TextMarshaler].
func (f Field) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown URL field %d", uint8(f)))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Field) UnmarshalText(text []byte) error {
	v, err := ParseField(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*f = v
	return nil
}
