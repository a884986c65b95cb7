package query

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gourl/internal/errorutil"
	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// Encode renders q as a query string without the leading "?".
//
// Fields with nil values, nil pointers, zero-length collections or one-element
// collections holding nil are dropped. A pointer to [Raw] stays verbatim.
// Every other value must be a single atomic scalar: string, [Raw], bool,
// an integer, a float, a [fmt.Stringer] or a one-element slice or array of those.
// Numbers are written in plain decimal notation, never in scientific one.
// Keys and values are percent-encoded keeping only RFC 3986 unreserved characters,
// except [Raw] values that are written verbatim.
//
// When no field is left the result is an empty string, meaning there is no query.
// Invalid values fail with [ErrValidation] naming the offending keys.
func Encode(q Query) (string, error) {
	if len(q) == 0 {
		return "", nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var (
		errs []error
		num  int
	)
	for _, f := range q {
		rv := reflect.ValueOf(f.Value)
		if isEmptyValue(rv) {
			continue
		}
		s, raw, err := formatScalar(rv)
		if err != nil {
			errs = append(errs, errorutil.NewValidationError(fmt.Errorf("key %q: %w", f.Key, err)))
			continue
		}
		if !raw {
			s = grammar.Escape(s, shouldEscapeQueryChar)
		}
		if num > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(grammar.Escape(f.Key, shouldEscapeQueryChar))
		sb.WriteByte('=')
		sb.WriteString(s)
		num++
	}
	if err := errorutil.JoinPrefix("invalid query", errs...); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

// EncodeAny encodes a dynamically typed mapping.
//
// Accepted values are nil, [Query], []Field and any map with string keys,
// including [net/url.Values]. Maps are encoded in sorted key order.
// An empty unnamed collection (slice or array) encodes to an empty string,
// a non-empty one and any other value fail with [ErrValidation].
func EncodeAny(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case Query:
		return errtrace.Wrap2(Encode(v))
	case []Field:
		return errtrace.Wrap2(Encode(v))
	case *Query:
		if v == nil {
			return "", nil
		}
		return errtrace.Wrap2(Encode(*v))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", errtrace.Wrap(errorutil.NewValidationError("query keys must be strings, got %s", rv.Type().Key()))
		}
		return errtrace.Wrap2(Encode(fromMap(rv)))
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", nil
		}
		return "", errtrace.Wrap(errorutil.NewValidationError("query must be a named mapping, got unnamed %T of length %d", v, rv.Len()))
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}
		return errtrace.Wrap2(EncodeAny(rv.Elem().Interface()))
	default:
		return "", errtrace.Wrap(errorutil.NewValidationError("query must be a mapping, got %T", v))
	}
}

func fromMap(rv reflect.Value) Query {
	keys := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys[iter.Key().String()] = iter.Value()
	}
	q := make(Query, 0, len(keys))
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		q = append(q, Field{Key: k, Value: keys[k].Interface()})
	}
	return q
}

func shouldEscapeQueryChar(c byte) bool { return !grammar.IsCharUnreserved(c) }

var (
	rawType      = reflect.TypeFor[Raw]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

func isEmptyValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Map:
		return v.Len() == 0
	case reflect.Slice, reflect.Array:
		if v.Len() == 1 {
			switch e := v.Index(0); e.Kind() {
			case reflect.Pointer, reflect.Interface:
				return e.IsNil()
			}
		}
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// formatScalar formats an atomic value and reports whether it is a [Raw] value.
func formatScalar(v reflect.Value) (string, bool, error) {
	if !v.IsValid() {
		return "", false, nil
	}
	if v.Type() == rawType {
		return v.String(), true, nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return "", false, nil
		}
		return errtrace.Wrap3(formatScalar(v.Elem()))
	case reflect.Pointer:
		if v.IsNil() {
			return "", false, nil
		}
		// *Raw has String in its method set too
		if v.Type().Elem() == rawType {
			return v.Elem().String(), true, nil
		}
	}
	if v.Type().Implements(stringerType) && v.CanInterface() {
		return v.Interface().(fmt.Stringer).String(), false, nil //nolint:forcetypeassert
	}

	switch v.Kind() {
	case reflect.Pointer:
		return errtrace.Wrap3(formatScalar(v.Elem()))
	case reflect.String:
		return v.String(), false, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), false, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), false, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), false, nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), false, nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), false, nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes()), false, nil
		}
		if n := v.Len(); n != 1 {
			return "", false, errtrace.Wrap(errorutil.Errorf("value must have length 1, got %d values", n))
		}
		e := v.Index(0)
		if e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
			if !e.Type().Implements(stringerType) {
				return "", false, errtrace.Wrap(errorutil.Errorf("value must be atomic, got nested %s", e.Type()))
			}
		}
		return errtrace.Wrap3(formatScalar(e))
	default:
		return "", false, errtrace.Wrap(errorutil.Errorf("value must be a scalar, got %s", v.Type()))
	}
}
