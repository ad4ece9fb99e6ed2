package driftscript

import "strings"

// WrongNumArgs composes the standard arity diagnostic from a prefix of the
// call's words followed by a free-form usage tail, and publishes it as the
// interpreter result. The message has the form
//
//	wrong # args: should be "foo bar additional stuff"
//
// where "foo" and "bar" come from words and "additional stuff" is message
// (which may be empty). Words carrying a keyword match are rendered with
// their canonical spelling, so abbreviated subcommands appear expanded;
// other words are quoted per the list quoting rules when needed. Active
// ensemble rewrite metadata splices the originally typed words in place of
// dispatcher-synthesized ones. This operation cannot fail.
func (in *Interp) WrongNumArgs(words []*Value, message string) {
	var b strings.Builder
	if in.AlternateWrongArgs() {
		b.WriteString(in.Result())
		b.WriteString(" or \"")
	} else {
		b.WriteString("wrong # args: should be \"")
	}

	// The compat quirk suppresses quoting on the very first emitted word
	// only.
	isFirst := true
	emitWord := func(s string) {
		quotable := !isFirst || !in.config.CompatBareFirstWord
		if quotable && scanElement(s) {
			b.WriteString(convertElement(s))
		} else {
			b.WriteString(s)
		}
		isFirst = false
	}

	// If a dispatcher rewrote this call, present it the way the user
	// typed it. Rewriting is only possible when all the synthesized words
	// are actually part of words; otherwise the vector is shown as is.
	if rewrite := in.ensembleRewrite(); rewrite != nil && len(words) >= rewrite.NumInserted {
		words = words[rewrite.NumInserted:]
		for i := 0; i < rewrite.NumRemoved; i++ {
			// Source words are never keyword-matched; emit the string
			// form, quoted as needed.
			emitWord(rewrite.Source[i].String())

			// A separating space, unless this is the last token overall.
			if i < rewrite.NumRemoved-1 || len(words) > 0 || message != "" {
				b.WriteString(" ")
			}
		}
	}

	for i, word := range words {
		if spelling, ok := KeywordSpelling(word); ok {
			// The canonical keyword text never needs escaping; emit it
			// unquoted even if the user typed an abbreviation.
			b.WriteString(spelling)
			isFirst = false
		} else {
			emitWord(word.String())
		}

		if i < len(words)-1 || message != "" {
			b.WriteString(" ")
		}
	}

	if message != "" {
		b.WriteString(message)
	}
	b.WriteString("\"")
	in.SetResult(b.String())
}
