// Package query implements the query component codec used by gourl.
//
// A [Query] is an ordered list of key/value [Field]s. [Decode] turns a raw query
// string into a Query keeping every pair in arrival order, duplicates included.
// [Encode] turns a Query back into a string, percent-encoding keys and values.
// Values wrapped in [Raw] are trusted to be encoded already and are written verbatim:
//
//	q := query.Query{}.
//		Append("q", "a b").
//		Append("sig", query.Raw("x%2By")).
//		Append("page", 2)
//	s, _ := q.Encode() // "q=a%20b&sig=x%2By&page=2"
package query

//go:generate go tool errtrace -w .

import (
	"iter"
	"log/slog"
	"maps"
	"net/url"
	"reflect"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

// ErrValidation is returned when a query can not be encoded.
const ErrValidation = errorutil.ErrValidation

// Raw marks a value as already percent-encoded.
// [Encode] writes it as is, the caller is responsible for its validity.
type Raw string

func (r Raw) String() string { return string(r) }

// Field is a single query pair.
//
// Decoded values are always string, or nil for a pair without "=".
// Values passed to the encoder may be any scalar, see [Encode].
type Field struct {
	Key   string
	Value any
}

// Query is an ordered list of query fields.
// Keys are case-sensitive and may repeat.
//
// Methods returning a Query never modify the receiver.
type Query []Field

// Len returns the number of fields.
func (q Query) Len() int { return len(q) }

// Get returns the value of the first field with the given key.
func (q Query) Get(key string) (any, bool) {
	if i := q.index(key); i >= 0 {
		return q[i].Value, true
	}
	return nil, false
}

// Lookup returns the first value of the given key formatted as a string.
// A nil or non-scalar value is returned as an empty string.
func (q Query) Lookup(key string) (string, bool) {
	v, ok := q.Get(key)
	if !ok {
		return "", false
	}
	s, _, _ := formatScalar(reflect.ValueOf(v))
	return s, true
}

// GetAll returns values of all fields with the given key in order.
func (q Query) GetAll(key string) []any {
	var vals []any
	for _, f := range q {
		if f.Key == key {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Has checks whether a field with the given key exists.
func (q Query) Has(key string) bool { return q.index(key) >= 0 }

// Keys returns unique keys in order of their first appearance.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q))
	seen := make(map[string]bool, len(q))
	for _, f := range q {
		if !seen[f.Key] {
			seen[f.Key] = true
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// Append returns a copy of q with a new field added to the end.
func (q Query) Append(key string, value any) Query {
	return append(slices.Clip(q), Field{Key: key, Value: value})
}

// Set returns a copy of q where the first field with the given key holds value
// and any other field with that key is removed.
// If there is no such key the field is appended.
func (q Query) Set(key string, value any) Query {
	i := q.index(key)
	if i < 0 {
		return q.Append(key, value)
	}
	q2 := make(Query, 0, len(q))
	q2 = append(q2, q[:i]...)
	q2 = append(q2, Field{Key: key, Value: value})
	for _, f := range q[i+1:] {
		if f.Key != key {
			q2 = append(q2, f)
		}
	}
	return q2
}

// Del returns a copy of q without fields with the given key.
func (q Query) Del(key string) Query {
	if !q.Has(key) {
		return q.Clone()
	}
	return slices.DeleteFunc(q.Clone(), func(f Field) bool { return f.Key == key })
}

// Merge returns a copy of q with every key of other set to its first value in other.
// Existing keys keep their position, new keys are appended in the order of other.
func (q Query) Merge(other Query) Query {
	q2 := q.Clone()
	for _, k := range other.Keys() {
		v, _ := other.Get(k)
		q2 = q2.Set(k, v)
	}
	return q2
}

// Compact returns a copy of q without the fields that [Encode] drops:
// nil values, nil pointers, zero-length collections and one-element collections holding nil.
func (q Query) Compact() Query {
	var q2 Query
	for _, f := range q {
		if !isEmptyValue(reflect.ValueOf(f.Value)) {
			q2 = append(q2, f)
		}
	}
	return q2
}

// Clone returns a copy of q. A nil Query stays nil.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	return slices.Clone(q)
}

// Equal compares q with another Query or []Field.
// Fields must match in order, values are compared deeply.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case []Field:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(q, other, func(f1, f2 Field) bool {
		return f1.Key == f2.Key && reflect.DeepEqual(f1.Value, f2.Value)
	})
}

// All returns an iterator over key/value pairs in order.
func (q Query) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range q {
			if !yield(f.Key, f.Value) {
				return
			}
		}
	}
}

// Values converts q to [url.Values]. Values are formatted as strings,
// nil becomes an empty string and one-element collections are flattened.
func (q Query) Values() url.Values {
	if q == nil {
		return nil
	}
	vals := make(url.Values, len(q))
	for _, f := range q {
		s, _, _ := formatScalar(reflect.ValueOf(f.Value))
		vals[f.Key] = append(vals[f.Key], s)
	}
	return vals
}

// FromValues converts [url.Values] to a Query.
// Keys are sorted, each value becomes a separate field.
func FromValues(vals url.Values) Query {
	if len(vals) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(vals))
	q := make(Query, 0, len(vals))
	for _, k := range keys {
		for _, v := range vals[k] {
			q = append(q, Field{Key: k, Value: v})
		}
	}
	return q
}

// Encode is a shortcut for [Encode](q).
func (q Query) Encode() (string, error) { return errtrace.Wrap2(Encode(q)) }

// String returns the encoded query or an empty string if it can not be encoded.
func (q Query) String() string {
	s, _ := Encode(q)
	return s
}

// LogValue implements [slog.LogValuer].
func (q Query) LogValue() slog.Value {
	if len(q) == 0 {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, len(q))
	for _, f := range q {
		s, _, _ := formatScalar(reflect.ValueOf(f.Value))
		attrs = append(attrs, slog.String(f.Key, s))
	}
	return slog.GroupValue(attrs...)
}

// MarshalText implements [encoding.TextMarshaler].
func (q Query) MarshalText() ([]byte, error) {
	s, err := Encode(q)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (q *Query) UnmarshalText(text []byte) error {
	*q = Decode(text)
	return nil
}

func (q Query) index(key string) int {
	return slices.IndexFunc(q, func(f Field) bool { return f.Key == key })
}
