// Package grammar implements the RFC 3986 pieces gourl is built on:
// character classes, percent-encoding and the two positional scanners
// that split a URI reference and its authority.
package grammar

// IsAlphanumChar checks ALPHA / DIGIT.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// IsCharUnreserved checks the unreserved rule of RFC 3986 section 2.3.
func IsCharUnreserved(c byte) bool {
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return IsAlphanumChar(c)
}

// IsSubDelim checks the sub-delims rule of RFC 3986 section 2.2.
func IsSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}
