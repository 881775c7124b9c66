package dot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned by [NewID] and by [Render] when an identifier
	// is empty. DOT has no representation for a nameless entity, so empty
	// text cannot be quoted into a valid token.
	ErrEmptyID = errors.New("identifier must not be empty")

	// ErrInvalidAttrName is returned by [Render] when an attribute name is
	// not a bare DOT identifier. Attribute names come from Graphviz's fixed
	// vocabulary (color, style, shape, ...) and are never quoted.
	ErrInvalidAttrName = errors.New("attribute name is not a valid DOT identifier")
)

// ID is a Graphviz identifier: the name of a graph or a node.
//
// Any non-empty text is a valid ID. Text matching DOT's bare identifier
// grammar is emitted verbatim; everything else, including DOT's reserved
// words (node, edge, graph, digraph, subgraph, strict), is emitted as a
// quoted string with embedded quotes, backslashes, and newlines escaped.
// The zero value is invalid and causes [Render] to fail with
// [ErrEmptyID].
type ID struct {
	name string
}

// NewID creates an ID from name. It returns [ErrEmptyID] if name is empty.
func NewID(name string) (ID, error) {
	if name == "" {
		return ID{}, ErrEmptyID
	}
	return ID{name: name}, nil
}

// MustID creates an ID from name and panics if name is empty.
// It simplifies construction from string literals in tests and examples.
func MustID(name string) ID {
	id, err := NewID(name)
	if err != nil {
		panic(fmt.Sprintf("dot: MustID(%q): %v", name, err))
	}
	return id
}

// String returns the raw identifier text without any quoting.
func (id ID) String() string { return id.name }

func (id ID) isZero() bool { return id.name == "" }

// dot returns the token emitted for the identifier: the text verbatim
// when it is a bare DOT identifier, a quoted string otherwise.
func (id ID) dot() string {
	if isBareID(id.name) {
		return id.name
	}
	return quote(id.name)
}

// dotKeywords are DOT's reserved words. A bare token matching one, in
// any case, changes the meaning of the statement it appears in, so
// these always take the quoted path.
var dotKeywords = map[string]bool{
	"node":     true,
	"edge":     true,
	"graph":    true,
	"digraph":  true,
	"subgraph": true,
	"strict":   true,
}

// isBareID reports whether s may appear in DOT output without quotes:
// either an alphanumeric/underscore word not starting with a digit, or a
// numeral literal. Reserved words and non-ASCII text are always quoted.
func isBareID(s string) bool {
	if s == "" || dotKeywords[strings.ToLower(s)] {
		return false
	}
	if isNumeral(s) {
		return true
	}
	if !isIDStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIDPart(s[i]) {
			return false
		}
	}
	return true
}

// isNumeral reports whether s matches DOT's numeral grammar:
// [-]?(.digits | digits[.digits]).
func isNumeral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return false
	}
	for i := 0; i < len(whole); i++ {
		if whole[i] < '0' || whole[i] > '9' {
			return false
		}
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return false
		}
	}
	return true
}

func isIDStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIDPart(c byte) bool {
	return isIDStart(c) || ('0' <= c && c <= '9')
}

// quote wraps s in double quotes, backslash-escaping embedded quotes
// and backslashes and rewriting literal control characters as their
// escape sequences, the same rewrites label text gets.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
