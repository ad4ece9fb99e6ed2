package driftscript

import "strings"

// List quoting: deciding whether a token survives as a single list element
// when pasted into a command line, and producing the quoted form when it
// does not. The parser in parser.go is the inverse of these rules.

// scanElement reports whether the token must be quoted to remain one list
// element.
func scanElement(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == '#' {
		return true
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f', ';', '$', '"', '\\', '{', '}', '[', ']':
			return true
		}
	}
	return false
}

// convertElement returns the quoted form of the token. Brace quoting is
// preferred since it leaves the content readable; backslash escaping is
// the fallback when braces cannot contain the token.
func convertElement(s string) string {
	if s == "" {
		return "{}"
	}
	if braceable(s) {
		return "{" + s + "}"
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case ' ', ';', '$', '"', '#', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// braceable reports whether the token can be wrapped in braces verbatim:
// braces must balance (ignoring backslash-escaped ones) and a backslash
// must not fall at the end, where it would escape the closing brace.
func braceable(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		case '\\':
			if i == len(s)-1 || s[i+1] == '\n' {
				return false
			}
			i++
		}
	}
	return depth == 0
}

// QuoteElement returns the token in a form that parses back as exactly one
// list element, quoting only when required.
func QuoteElement(s string) string {
	if scanElement(s) {
		return convertElement(s)
	}
	return s
}

// FormatList renders the values as a single space-separated line of list
// elements, quoting each as required.
func FormatList(vals []*Value) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(QuoteElement(v.String()))
	}
	return b.String()
}
