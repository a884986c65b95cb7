package types

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"
)

// Opt is an optional string.
// The zero value is absent, which is different from a present empty string.
type Opt struct {
	val string
	ok  bool
}

// Some returns a present [Opt] holding s, even when s is empty.
func Some(s string) Opt { return Opt{val: s, ok: true} }

// None returns an absent [Opt].
func None() Opt { return Opt{} }

// Get returns the value and a flag indicating whether it is present.
func (o Opt) Get() (string, bool) { return o.val, o.ok }

// Value returns the value or an empty string when absent.
func (o Opt) Value() string { return o.val }

// IsSet reports whether the value is present.
func (o Opt) IsSet() bool { return o.ok }

// String returns the value, absent renders as an empty string.
func (o Opt) String() string { return o.val }

// GoString makes absent values visible in %#v output.
func (o Opt) GoString() string {
	if !o.ok {
		return "None()"
	}
	return "Some(" + strconv.Quote(o.val) + ")"
}

// Equal compares the Opt with another Opt or *Opt.
func (o Opt) Equal(val any) bool {
	var other Opt
	switch v := val.(type) {
	case Opt:
		other = v
	case *Opt:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return o.ok == other.ok && o.val == other.val
}

// LogValue implements [slog.LogValuer].
func (o Opt) LogValue() slog.Value {
	if !o.ok {
		return slog.Value{}
	}
	return slog.StringValue(o.val)
}

// MarshalJSON implements [json.Marshaler]. Absent values are encoded as null.
func (o Opt) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(o.val))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Opt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Opt{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errtrace.Wrap(err)
	}
	*o = Some(s)
	return nil
}
