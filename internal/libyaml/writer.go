// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Low-level text writer: buffer, indentation and line-width bookkeeping,
// scalar content analysis and style selection, and the character-level
// scalar/anchor/tag writers. This is the "event -> text" half of the
// event emitter contract (§4.5): everything here is a direct
// reimplementation of libYAML's writer/emitter character-level
// behavior, since that algorithm (not any business logic) is what makes
// output byte-compatible.

package libyaml

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// textWriter accumulates emitted YAML text and tracks enough state
// (column, indent, whether the cursor is at line-start or after
// whitespace) to decide indentation and line wrapping as it goes.
type textWriter struct {
	out bytes.Buffer

	column    int
	indent    int
	whitespace bool
	indention bool
	openEnded bool

	canonical    bool
	unicode      bool
	bestIndent   int
	bestWidth    int
	lineBreak    LineBreak
}

func newTextWriter(opts *Options) *textWriter {
	indent := opts.Indent
	if indent < 2 || indent > 9 {
		indent = 2
	}
	width := opts.LineWidth
	if width == 0 {
		width = 80
	} else if width < 0 {
		width = 1<<31 - 1
	}
	lb := opts.LineBreak
	if lb == ANY_BREAK {
		lb = LN_BREAK
	}
	return &textWriter{
		indent:     -1,
		whitespace: true,
		indention:  true,
		canonical:  opts.Canonical,
		unicode:    opts.AllowUnicode,
		bestIndent: indent,
		bestWidth:  width,
		lineBreak:  lb,
	}
}

func (w *textWriter) lineBreakBytes() []byte {
	switch w.lineBreak {
	case CR_BREAK:
		return []byte{'\r'}
	case CRLN_BREAK:
		return []byte{'\r', '\n'}
	default:
		return []byte{'\n'}
	}
}

func (w *textWriter) writeBreak() {
	w.out.Write(w.lineBreakBytes())
	w.column = 0
	w.whitespace = true
	w.indention = true
}

func (w *textWriter) write(s string) {
	w.out.WriteString(s)
	w.column += utf8.RuneCountInString(s)
	w.whitespace = false
	w.indention = false
}

func (w *textWriter) writeIndicator(indicator string, needWhitespace, isWhitespace, isIndention bool) {
	if needWhitespace && !w.whitespace {
		w.out.WriteByte(' ')
		w.column++
	}
	w.out.WriteString(indicator)
	w.column += utf8.RuneCountInString(indicator)
	w.whitespace = isWhitespace
	w.indention = w.indention && isIndention
}

func (w *textWriter) increaseIndent(flow, indentless bool) int {
	save := w.indent
	if w.indent < 0 {
		if flow {
			w.indent = w.bestIndent
		} else {
			w.indent = 0
		}
	} else if !indentless {
		w.indent += w.bestIndent
	}
	return save
}

func (w *textWriter) writeIndent() {
	indent := w.indent
	if indent < 0 {
		indent = 0
	}
	if !w.indention || w.column > indent || (w.column == indent && !w.whitespace) {
		w.writeBreak()
	}
	for w.column < indent {
		w.out.WriteByte(' ')
		w.column++
	}
	w.whitespace = true
	w.indention = true
}

func (w *textWriter) writeAnchor(anchor, indicator string) {
	w.writeIndicator(indicator+anchor, true, false, false)
}

func (w *textWriter) writeTagHandle(handle string) {
	w.writeIndicator(handle, true, false, false)
}

// writeTagContent writes a tag URI, percent-encoding any byte outside
// the small set YAML allows unescaped in a tag.
func (w *textWriter) writeTagContent(value string, needWhitespace bool) {
	if needWhitespace && !w.whitespace {
		w.out.WriteByte(' ')
		w.column++
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isAlnum(c) || strings.IndexByte("-;/?:@&=+$,_.!~*'()[]", c) >= 0 {
			w.out.WriteByte(c)
			w.column++
			continue
		}
		fmt.Fprintf(&w.out, "%%%02X", c)
		w.column += 3
	}
	w.whitespace = false
	w.indention = false
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// scalarAnalysis summarizes the content-inspection flags analyzeScalar
// computes: which styles are legal for this content in which context.
type scalarAnalysis struct {
	multiline         bool
	flowPlainAllowed  bool
	blockPlainAllowed bool
	singleQuoted      bool
	blockAllowed      bool
	special           bool // contains characters that force double-quoting
}

// analyzeScalar classifies scalar content by inspecting it
// character-by-character, the way libYAML's analyze_scalar does: a
// leading/trailing space or break, certain indicator characters at
// position 0, tabs, and control characters each rule out one or more
// styles.
func analyzeScalar(value string) scalarAnalysis {
	if value == "" {
		return scalarAnalysis{flowPlainAllowed: true, blockPlainAllowed: true, singleQuoted: true}
	}

	a := scalarAnalysis{flowPlainAllowed: true, blockPlainAllowed: true, singleQuoted: true, blockAllowed: true}

	if value == "---" || value == "..." {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
	}

	leadingSpace := strings.HasPrefix(value, " ")
	leadingBreak := strings.HasPrefix(value, "\n")
	trailingSpace := strings.HasSuffix(value, " ")
	trailingBreak := strings.HasSuffix(value, "\n")
	if leadingSpace || leadingBreak {
		a.blockAllowed = false
	}
	if trailingSpace {
		a.blockAllowed = false
	}
	if leadingSpace {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
	}
	if trailingSpace {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
	}

	runes := []rune(value)
	for i, r := range runes {
		switch {
		case r == '\n':
			a.multiline = true
		case r == '\t':
			a.flowPlainAllowed = false
			a.blockPlainAllowed = false
			a.special = true
		case r < 0x20 || r == 0x7f:
			a.special = true
		case !w_unicodeAllowed(r):
			a.special = true
		}

		if i == 0 {
			switch r {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				a.flowPlainAllowed = false
				a.blockPlainAllowed = false
			case '-', '?', ':':
				if len(runes) == 1 || runes[1] == ' ' {
					a.flowPlainAllowed = false
					a.blockPlainAllowed = false
				}
			}
		} else {
			switch r {
			case ':':
				if i+1 == len(runes) || runes[i+1] == ' ' {
					a.flowPlainAllowed = false
					a.blockPlainAllowed = false
				}
			case '#':
				if runes[i-1] == ' ' {
					a.flowPlainAllowed = false
					a.blockPlainAllowed = false
				}
			case ',', '[', ']', '{', '}':
				a.flowPlainAllowed = false
			}
		}
	}

	if trailingBreak {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
	}

	return a
}

// w_unicodeAllowed reports whether r may be written unescaped; control
// and non-printable runes never are, regardless of the unicode option
// (that option only governs whether >0x7F printable runes are escaped).
func w_unicodeAllowed(r rune) bool {
	if r == '\n' || r == '\t' {
		return true
	}
	if r < 0x20 || r == 0x7f {
		return false
	}
	if r >= 0x80 && r <= 0x84 || r >= 0x86 && r <= 0x9f {
		return false
	}
	return true
}

// selectScalarStyle resolves an advisory ScalarStyle request against
// the content analysis and the current context (flow vs block, simple
// key position, whether a tag is implicit), stabilizing on a style that
// is actually legal for this content (§4.5, §8).
func selectScalarStyle(value string, requested ScalarStyle, analysis scalarAnalysis, noTag, isImplicit, flow, simpleKey, canonical bool) ScalarStyle {
	style := requested
	if style == ANY_SCALAR_STYLE {
		style = PLAIN_SCALAR_STYLE
	}
	if canonical {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	if simpleKey && analysis.multiline {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}

	if style == PLAIN_SCALAR_STYLE {
		allowed := analysis.blockPlainAllowed
		if flow {
			allowed = analysis.flowPlainAllowed
		}
		if !allowed || (flow && value == "") || (simpleKey && value == "") || (noTag && !isImplicit) {
			style = SINGLE_QUOTED_SCALAR_STYLE
		}
	}
	if style == SINGLE_QUOTED_SCALAR_STYLE && !analysis.singleQuoted {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	if (style == LITERAL_SCALAR_STYLE || style == FOLDED_SCALAR_STYLE) &&
		(!analysis.blockAllowed || flow || simpleKey) {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	if analysis.special && style != DOUBLE_QUOTED_SCALAR_STYLE {
		style = DOUBLE_QUOTED_SCALAR_STYLE
	}
	return style
}

func (w *textWriter) writePlainScalar(value string, indentless bool) {
	if !w.whitespace {
		w.out.WriteByte(' ')
		w.column++
	}
	spaces, breaks := false, false
	for _, r := range value {
		switch {
		case r == ' ':
			if !spaces && !indentless && w.column > w.bestWidth {
				w.writeIndent()
			} else {
				w.out.WriteByte(' ')
				w.column++
			}
			spaces, breaks = true, false
			continue
		case r == '\n':
			w.writeBreak()
			spaces, breaks = false, true
			continue
		default:
			if breaks {
				w.writeIndent()
			}
			w.out.WriteRune(r)
			w.column++
			spaces, breaks = false, false
		}
	}
	w.whitespace = false
	w.indention = false
}

func (w *textWriter) writeSingleQuotedScalar(value string, indentless bool) {
	w.writeIndicator("'", true, false, false)
	spaces, breaks := false, false
	for _, r := range value {
		switch {
		case r == ' ':
			if !spaces && !indentless && w.column > w.bestWidth {
				w.writeIndent()
			} else {
				w.out.WriteByte(' ')
				w.column++
			}
			spaces, breaks = true, false
		case r == '\n':
			w.writeBreak()
			spaces, breaks = false, true
		case r == '\'':
			w.out.WriteString("''")
			w.column += 2
			spaces, breaks = false, false
		default:
			if breaks {
				w.writeIndent()
			}
			w.out.WriteRune(r)
			w.column++
			spaces, breaks = false, false
		}
	}
	w.writeIndicator("'", false, false, false)
}

var doubleQuoteEscapes = map[rune]string{
	0x00:   "0",
	0x07:   "a",
	0x08:   "b",
	0x09:   "t",
	0x0A:   "n",
	0x0B:   "v",
	0x0C:   "f",
	0x0D:   "r",
	0x1B:   "e",
	'"':    "\"",
	'\\':   "\\",
	0x85:   "N",
	0xA0:   "_",
	0x2028: "L",
	0x2029: "P",
}

func (w *textWriter) writeDoubleQuotedScalar(value string, indentless bool) {
	w.writeIndicator("\"", true, false, false)
	spaces := false
	for _, r := range value {
		if esc, ok := doubleQuoteEscapes[r]; ok {
			w.out.WriteByte('\\')
			w.out.WriteString(esc)
			w.column += 2
			spaces = false
			continue
		}
		if !w.unicode && r > 0x7E || !w_unicodeAllowed(r) && r != '\n' && r != '\t' {
			switch {
			case r <= 0xFF:
				fmt.Fprintf(&w.out, "\\x%02X", r)
				w.column += 4
			case r <= 0xFFFF:
				fmt.Fprintf(&w.out, "\\u%04X", r)
				w.column += 6
			default:
				fmt.Fprintf(&w.out, "\\U%08X", r)
				w.column += 10
			}
			spaces = false
			continue
		}
		if r == ' ' {
			if !indentless && w.column > w.bestWidth && !spaces {
				w.writeIndent()
				w.out.WriteByte('\\')
				w.column++
			} else {
				w.out.WriteByte(' ')
				w.column++
			}
			spaces = true
			continue
		}
		w.out.WriteRune(r)
		w.column += runeWidth(r)
		spaces = false
	}
	w.writeIndicator("\"", false, false, false)
}

func runeWidth(r rune) int {
	if r < 0x80 {
		return 1
	}
	return len(strconv.QuoteRune(r)) // coarse but only used for column tracking
}

func (w *textWriter) writeBlockScalarHints(value string) {
	if len(value) == 0 {
		return
	}
	if value[0] == ' ' || value[0] == '\n' {
		fmt.Fprintf(&w.out, "%d", w.bestIndent)
		w.column++
	}
	last := value[len(value)-1]
	switch {
	case last != '\n':
		w.writeIndicator("-", false, false, false)
	case len(value) == 1 || value[len(value)-2] == '\n':
		w.writeIndicator("+", false, false, false)
	}
}

func (w *textWriter) writeLiteralScalar(value string) {
	w.writeIndicator("|", true, false, false)
	w.writeBlockScalarHints(value)
	w.writeBreak()
	w.indention = true
	breaks := true
	for _, r := range value {
		if r == '\n' {
			w.writeBreak()
			breaks = true
			continue
		}
		if breaks {
			w.writeIndent()
		}
		w.out.WriteRune(r)
		w.column++
		breaks = false
	}
}

func (w *textWriter) writeFoldedScalar(value string) {
	w.writeIndicator(">", true, false, false)
	w.writeBlockScalarHints(value)
	w.writeBreak()
	w.indention = true
	breaks, leadingSpaces := true, true
	for _, r := range value {
		if r == '\n' {
			if !breaks && !leadingSpaces {
				w.writeBreak()
			}
			w.writeBreak()
			breaks = true
			continue
		}
		if breaks {
			w.writeIndent()
			leadingSpaces = r == ' '
		}
		if !breaks && r == ' ' && w.column > w.bestWidth {
			w.writeIndent()
		} else {
			w.out.WriteRune(r)
			w.column++
		}
		breaks = false
	}
}
