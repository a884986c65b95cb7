package gourl

import (
	"braces.dev/errtrace"
	"github.com/PuerkitoBio/purell"

	"github.com/ghettovoice/gourl/internal/errorutil"
)

// NormalizeFlags selects normalizations applied by [Normalize].
type NormalizeFlags = purell.NormalizationFlags

const (
	FlagsSafe                 = purell.FlagsSafe
	FlagsUsuallySafeGreedy    = purell.FlagsUsuallySafeGreedy
	FlagsUsuallySafeNonGreedy = purell.FlagsUsuallySafeNonGreedy
	FlagsUnsafeGreedy         = purell.FlagsUnsafeGreedy
	FlagRemoveFragment        = purell.FlagRemoveFragment
	FlagSortQuery             = purell.FlagSortQuery
	FlagRemoveDotSegments     = purell.FlagRemoveDotSegments
)

// Normalize parses v, builds it and normalizes the result.
//
// Unlike [Parse], normalization is strict: the built URL must be accepted by [net/url.Parse],
// otherwise the error wraps [ErrValidation].
func Normalize(v any, flags NormalizeFlags) (string, error) {
	u, err := Parse(v)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	s, err := Build(u)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	ns, err := purell.NormalizeURLString(s, flags)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewValidationError(err))
	}
	return ns, nil
}
