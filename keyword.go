package driftscript

import (
	"errors"
	"strings"
)

// Error kinds reported by keyword matching. The interpreter result carries
// the formatted message; these sentinels classify it for errors.Is.
var (
	// ErrNoMatch: the input matched no table entry, or exact matching was
	// requested and only an abbreviation matched.
	ErrNoMatch = errors.New("no matching keyword")

	// ErrAmbiguousMatch: the input abbreviated two or more entries and
	// matched none exactly.
	ErrAmbiguousMatch = errors.New("ambiguous keyword")

	// ErrUnsupportedConversion: generic string-to-keyword conversion was
	// attempted. Keyword values can only be produced by MatchKeyword,
	// which supplies the table.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// MatchError is the failure result of keyword matching. Error returns the
// same text left in the interpreter result; Unwrap exposes the kind.
type MatchError struct {
	Kind    error
	Message string
}

func (e *MatchError) Error() string { return e.Message }

// Unwrap returns the error kind for errors.Is.
func (e *MatchError) Unwrap() error { return e.Kind }

// KeywordTable is an ordered set of distinct non-empty strings that values
// can be matched against. Tables are identified by pointer, never by
// content: two tables with identical entries are distinct for caching.
// Tables are immutable after construction and safe for concurrent reads.
type KeywordTable struct {
	entries []string
}

// NewKeywordTable creates a table from its entries, in order. Entries must
// be non-empty and pairwise distinct.
func NewKeywordTable(entries ...string) *KeywordTable {
	return &KeywordTable{entries: entries}
}

// NewStridedKeywordTable creates a table over a flattened record array:
// the keywords sit at indexes 0, stride, 2*stride, ... with the other
// columns belonging to the caller's records. Matching such a table
// requires passing the same stride to MatchKeywordStride.
func NewStridedKeywordTable(entries []string) *KeywordTable {
	return &KeywordTable{entries: entries}
}

// count returns the number of keywords reachable at the given stride.
func (t *KeywordTable) count(stride int) int {
	return (len(t.entries) + stride - 1) / stride
}

// entryAt returns the keyword at index i for the given stride.
func (t *KeywordTable) entryAt(stride, i int) string {
	return t.entries[i*stride]
}

// Entries returns the keywords at stride 1.
func (t *KeywordTable) Entries() []string {
	return t.entries
}

// keywordRep is the cached payload of a keyword-matched value: the
// identity of the table it was matched against and the resolved index.
// Only matchKeyword constructs these, so a value tagged KeywordType always
// carries a record.
type keywordRep struct {
	table  *KeywordTable // borrowed, never freed with the record
	stride int
	index  int
}

// KeywordType is the descriptor for keyword-matched values. Its string
// form is always the canonical table entry, never the abbreviation the
// match was made from.
var KeywordType = &ValueType{
	Name: "keyword",

	// The record owns nothing beyond itself; the table is borrowed.
	FreeIntRep: func(v *Value) {},

	DupIntRep: func(src, dup *Value) {
		rep := src.intRep.(*keywordRep)
		dup.intRep = &keywordRep{table: rep.table, stride: rep.stride, index: rep.index}
	},

	// No abbreviation is ever generated: regenerating the string form
	// expands the value to the canonical spelling.
	UpdateString: func(v *Value) {
		rep := v.intRep.(*keywordRep)
		v.bytes = []byte(rep.table.entryAt(rep.stride, rep.index))
	},

	SetFromString: func(in *Interp, v *Value) error {
		const msg = "can't convert value to keyword except via MatchKeyword"
		if in != nil {
			in.SetResult(msg)
		}
		return &MatchError{Kind: ErrUnsupportedConversion, Message: msg}
	},
}

// MatchKeyword looks up v's string form in table and returns the index of
// the matching entry. The value may be an exact match or, unless exact is
// set, a unique abbreviation of exactly one entry. label names the kind of
// word in error messages (e.g. "option" yields `bad option "foo": must be
// ...`). The lookup result is cached on v, so repeated matches against the
// same table return without rescanning.
func MatchKeyword(in *Interp, v *Value, table *KeywordTable, label string, exact bool) (int, error) {
	// Checking the cache here skips the stride plumbing in the common
	// case where the result is already cached.
	if v.typ == KeywordType {
		rep := v.intRep.(*keywordRep)
		if rep.table == table && rep.stride == 1 {
			return rep.index, nil
		}
	}
	return MatchKeywordStride(in, v, table, 1, label, exact)
}

// MatchKeywordStride is MatchKeyword for strided tables. The (table,
// stride) pair is the cache identity: a result cached against a different
// table, or the same table at a different stride, is never trusted.
func MatchKeywordStride(in *Interp, v *Value, table *KeywordTable, stride int, label string, exact bool) (int, error) {
	if v.typ == KeywordType {
		rep := v.intRep.(*keywordRep)
		if rep.table == table && rep.stride == stride {
			return rep.index, nil
		}
	}

	// Scan for one of:
	//  - an exact match (always preferred)
	//  - a single abbreviation (allowed unless exact is set)
	//  - several abbreviations (never allowed, but overridden by an exact
	//    match)
	key := v.String()
	index := -1
	numAbbrev := 0
	exactMatch := false

	// The empty string is never a match.
	if key != "" {
		n := table.count(stride)
		for i := 0; i < n; i++ {
			entry := table.entryAt(stride, i)
			if entry == key {
				index = i
				exactMatch = true
				break
			}
			if strings.HasPrefix(entry, key) {
				// The value abbreviates this entry. Keep scanning: a
				// later exact match still wins, and every further
				// abbreviation must be counted to detect ambiguity.
				numAbbrev++
				index = i
			}
		}
	}

	if !exactMatch && (exact || numAbbrev != 1) {
		return -1, matchFailure(in, table, stride, label, key, numAbbrev)
	}

	// Cache the result. When the value already carries a keyword record,
	// overwrite it in place rather than allocating a fresh one.
	if v.typ == KeywordType {
		rep := v.intRep.(*keywordRep)
		rep.table, rep.stride, rep.index = table, stride, index
	} else {
		v.SetIntRep(KeywordType, &keywordRep{table: table, stride: stride, index: index})
	}
	return index, nil
}

// matchFailure formats the lookup failure, sets it as the interpreter
// result when an interp is supplied, and returns the classified error.
func matchFailure(in *Interp, table *KeywordTable, stride int, label, key string, numAbbrev int) error {
	var b strings.Builder
	if numAbbrev > 1 {
		b.WriteString("ambiguous ")
	} else {
		b.WriteString("bad ")
	}
	b.WriteString(label)
	b.WriteString(" \"")
	b.WriteString(key)
	b.WriteString("\": must be ")

	n := table.count(stride)
	for i := 0; i < n; i++ {
		switch {
		case i == 0:
			// first entry follows "must be " directly
		case i == n-1 && n == 2:
			b.WriteString(" or ")
		case i == n-1:
			b.WriteString(", or ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(table.entryAt(stride, i))
	}

	kind := ErrNoMatch
	if numAbbrev > 1 {
		kind = ErrAmbiguousMatch
	}
	err := &MatchError{Kind: kind, Message: b.String()}
	if in != nil {
		in.SetResult(err.Message)
	}
	return err
}

// KeywordSpelling returns the canonical spelling of a keyword-matched
// value and whether the value carries a keyword match at all.
func KeywordSpelling(v *Value) (string, bool) {
	if v.typ != KeywordType {
		return "", false
	}
	rep := v.intRep.(*keywordRep)
	return rep.table.entryAt(rep.stride, rep.index), true
}
