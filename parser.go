package driftscript

import "fmt"

// The word grammar is the inverse of the quoting rules in quotelist.go:
// words are separated by whitespace; `{...}` wraps a word verbatim (braces
// nest, a backslash protects the next byte from brace counting); `"..."`
// wraps a word with backslash escapes decoded; bare words decode backslash
// escapes in place.

// ParseWords splits a single command line into its words.
func ParseWords(line string) ([]string, error) {
	var words []string
	i := 0
	for {
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		if i >= len(line) {
			break
		}

		var word string
		var err error
		switch line[i] {
		case '{':
			word, i, err = parseBraced(line, i)
		case '"':
			word, i, err = parseQuoted(line, i)
		default:
			word, i = parseBare(line, i)
		}
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// ParseCommand splits a command line into argument values. Empty lines and
// comment lines (first non-space byte '#') yield a nil vector.
func ParseCommand(line string) ([]*Value, error) {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i >= len(line) || line[i] == '#' {
		return nil, nil
	}

	words, err := ParseWords(line[i:])
	if err != nil {
		return nil, err
	}
	return NewValues(words...), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// parseBraced consumes a `{...}` word starting at the opening brace. The
// content is taken verbatim; nested braces must balance and a backslash
// shields the following byte from brace counting.
func parseBraced(line string, start int) (string, int, error) {
	depth := 1
	i := start + 1
	for i < len(line) {
		switch line[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				word := line[start+1 : i]
				i++
				if i < len(line) && !isSpace(line[i]) {
					return "", 0, &ScriptError{Message: "extra characters after close-brace"}
				}
				return word, i, nil
			}
		case '\\':
			if i+1 < len(line) {
				i++
			}
		}
		i++
	}
	return "", 0, &ScriptError{Message: "missing close-brace"}
}

// parseQuoted consumes a `"..."` word starting at the opening quote,
// decoding backslash escapes.
func parseQuoted(line string, start int) (string, int, error) {
	var b []byte
	i := start + 1
	for i < len(line) {
		switch line[i] {
		case '"':
			i++
			if i < len(line) && !isSpace(line[i]) {
				return "", 0, &ScriptError{Message: "extra characters after close-quote"}
			}
			return string(b), i, nil
		case '\\':
			if i+1 >= len(line) {
				return "", 0, &ScriptError{Message: "trailing backslash"}
			}
			b = append(b, unescape(line[i+1]))
			i += 2
		default:
			b = append(b, line[i])
			i++
		}
	}
	return "", 0, &ScriptError{Message: "missing close-quote"}
}

// parseBare consumes an unquoted word, decoding backslash escapes so that
// escaped separators stay inside the word.
func parseBare(line string, start int) (string, int) {
	var b []byte
	i := start
	for i < len(line) && !isSpace(line[i]) {
		if line[i] == '\\' && i+1 < len(line) {
			b = append(b, unescape(line[i+1]))
			i += 2
			continue
		}
		b = append(b, line[i])
		i++
	}
	return string(b), i
}

// unescape maps the byte following a backslash to its decoded form.
func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'v':
		return '\v'
	case 'f':
		return '\f'
	default:
		return c
	}
}

// mustParseWords is a helper for lines known to be valid.
func mustParseWords(line string) []string {
	words, err := ParseWords(line)
	if err != nil {
		panic(fmt.Sprintf("driftscript: invalid line %q: %v", line, err))
	}
	return words
}
