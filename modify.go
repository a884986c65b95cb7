package gourl

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/query"
)

// Override transforms a URL, see [Modify].
type Override func(u URL) URL

// Set overrides a field with v.
func Set(f Field, v string) Override {
	return func(u URL) URL { return u.With(f, v) }
}

// Clear removes a field.
func Clear(f Field) Override {
	return func(u URL) URL { return u.Without(f) }
}

// SetQuery replaces the whole query.
func SetQuery(q query.Query) Override {
	return func(u URL) URL { return u.WithQuery(q) }
}

// ClearQuery removes the query.
func ClearQuery() Override {
	return func(u URL) URL { return u.WithoutQuery() }
}

// MergeQuery sets every key of q in the query, see [query.Query.Merge].
func MergeQuery(q query.Query) Override {
	return func(u URL) URL { return u.WithQuery(u.Query.Merge(q)) }
}

// SetParam sets a single query key, see [query.Query.Set].
func SetParam(key string, value any) Override {
	return func(u URL) URL { return u.WithQuery(u.Query.Set(key, value)) }
}

// DelParam removes a query key.
// The query becomes absent when no field is left.
func DelParam(key string) Override {
	return func(u URL) URL {
		q := u.Query.Del(key)
		if len(q) == 0 {
			return u.WithoutQuery()
		}
		return u.WithQuery(q)
	}
}

// Apply returns a copy of u with every override applied in order.
func (u URL) Apply(overrides ...Override) URL {
	u2 := u.Clone()
	for _, o := range overrides {
		if o != nil {
			u2 = o(u2)
		}
	}
	return u2
}

// Modify parses v, applies overrides in order and builds the result.
func Modify(v any, overrides ...Override) (string, error) {
	u, err := Parse(v)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(Build(u.Apply(overrides...)))
}
