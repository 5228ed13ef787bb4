package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var accessorPrefixes = []string{"get", "set", "is"}

// IsGetter reports whether the method name follows the getter convention.
func IsGetter(methodName string) bool {
	return hasAccessorPrefix(methodName, "get") || hasAccessorPrefix(methodName, "is")
}

// FieldNameCandidates returns the field names an accessor may correspond to,
// most specific first. Names that do not follow the accessor convention yield
// only themselves.
func FieldNameCandidates(methodName string) []string {
	for _, prefix := range accessorPrefixes {
		if !hasAccessorPrefix(methodName, prefix) {
			continue
		}
		rest := methodName[len(prefix):]
		candidates := []string{Uncapitalize(rest)}
		if rest != candidates[0] {
			candidates = append(candidates, rest)
		}
		return candidates
	}
	return []string{methodName}
}

// Uncapitalize lowers the first rune of s.
func Uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// SimpleName returns the last dot-separated segment of a qualified name.
func SimpleName(fullName string) string {
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}

// hasAccessorPrefix requires an upper-case rune after the prefix so names like
// "issuer" or "settings" are not mistaken for accessors.
func hasAccessorPrefix(name, prefix string) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[len(prefix):])
	return unicode.IsUpper(r)
}
