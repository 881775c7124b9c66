package dot

import "strings"

// labelKind selects how label text is escaped on emission.
type labelKind int

const (
	labelText labelKind = iota
	labelEscaped
	labelHTML
)

// Label is the text for a Graphviz label on a node or edge, or a color
// or shape value. The constructor determines how the text is escaped
// when emitted.
//
// The zero value renders as the empty quoted string "".
type Label struct {
	text string
	kind labelKind
}

// Text returns a label that preserves s as-is in the rendered output.
// Backslashes are escaped and therefore appear literally.
func Text(s string) Label { return Label{text: s} }

// Escaped returns a label using Graphviz's escString type
// (https://graphviz.org/docs/attr-types/escString).
//
// Backslashes are not escaped; they initiate escString escape sequences.
// Besides \n to break a line (centering the line preceding it), \l
// left-justifies the preceding line and \r right-justifies it.
func Escaped(s string) Label { return Label{text: s, kind: labelEscaped} }

// HTML returns a Graphviz HTML string label
// (https://graphviz.org/doc/info/shapes.html#html). The text is emitted
// exactly as given between < and >, with no escaping. Use [EscapeHTML]
// to sanitize untrusted fragments first.
func HTML(s string) Label { return Label{text: s, kind: labelHTML} }

// String returns the raw label text without delimiters or escaping.
func (l Label) String() string { return l.text }

// dot renders the label as it appears in an attribute list, including
// quotes or angle-bracket delimiters.
func (l Label) dot() string {
	switch l.kind {
	case labelEscaped:
		return `"` + escapeEscString(l.text) + `"`
	case labelHTML:
		return "<" + l.text + ">"
	default:
		return `"` + escapeText(l.text) + `"`
	}
}

// preEscaped decomposes the label into text that yields the same output
// when wrapped back up with [Escaped]. Used by line composition.
func (l Label) preEscaped() string {
	if l.kind == labelText && strings.ContainsRune(l.text, '\\') {
		return escapeText(l.text)
	}
	return l.text
}

// PrefixLine puts prefix on a line above this label, separated by a
// blank line.
func (l Label) PrefixLine(prefix Label) Label {
	return prefix.SuffixLine(l)
}

// SuffixLine puts suffix on a line below this label, separated by a
// blank line.
func (l Label) SuffixLine(suffix Label) Label {
	return Escaped(l.preEscaped() + `\n\n` + suffix.preEscaped())
}

// escapeText escapes label text so it survives quoting verbatim:
// backslashes are doubled, quotes are escaped, and literal control
// characters become their escape sequences.
func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
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
	return b.String()
}

// escapeEscString is escapeText minus backslash doubling, so escString
// sequences such as \l reach Graphviz intact.
func escapeEscString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
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
	return b.String()
}

// EscapeHTML escapes tag and entity characters so arbitrary text can be
// embedded in a Graphviz HTML label.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)
