package query

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/types"
)

// Decode parses a raw query string, with or without the leading "?".
//
// Pairs are split on "&", empty pairs are skipped. Each pair is split on the first "=".
// A pair without "=" gets a nil value, so "a" and "a=" stay distinguishable.
// Keys and values are percent-decoded independently, "+" is kept as is.
// Order and duplicate keys are preserved.
//
// Decode returns nil when there are no pairs.
func Decode[T types.Byteseq](s T) Query {
	str := strings.TrimPrefix(string(s), "?")
	if str == "" {
		return nil
	}

	var q Query
	for pair := range strings.SplitSeq(str, "&") {
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		f := Field{Key: grammar.Unescape(k)}
		if ok {
			f.Value = grammar.Unescape(v)
		}
		q = append(q, f)
	}
	return q
}
