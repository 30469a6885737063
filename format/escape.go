package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Escape returns s with Java escape sequences. When quote is '"' or '\'' the result
// is wrapped in that quote and the quote character is escaped inside. Control
// characters are always written as \uXXXX; other non-ASCII characters only when
// unicodeOK is false. Characters outside the BMP become a surrogate pair.
func Escape(s string, quote rune, unicodeOK bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	if quote != 0 {
		b.WriteRune(quote)
	}
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"', '\'':
			if r == quote {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				writeUnicodeEscape(&b, r, "\\u%04X")
			case r < 0x80:
				b.WriteRune(r)
			case unicodeOK && unicode.IsPrint(r):
				b.WriteRune(r)
			default:
				writeUnicodeEscape(&b, r, "\\u%04X")
			}
		}
	}
	if quote != 0 {
		b.WriteRune(quote)
	}
	return b.String()
}

// escapeChar quotes a single UTF-16 code unit. Lone surrogates have no UTF-8 form
// and are always escaped.
func escapeChar(c uint16, unicodeOK bool) string {
	if utf16.IsSurrogate(rune(c)) {
		return fmt.Sprintf(`'\u%04X'`, c)
	}
	return Escape(string(rune(c)), '\'', unicodeOK)
}

// EscapeIdentifier replaces characters that cannot appear in a Java identifier
// with \uxxxx escapes. Names that are already valid are returned unchanged.
func EscapeIdentifier(name string) string {
	valid := true
	for i, r := range name {
		if !identifierRune(r, i == 0) {
			valid = false
			break
		}
	}
	if valid {
		return name
	}

	var b strings.Builder
	b.Grow(len(name) * 2)
	for i, r := range name {
		if identifierRune(r, i == 0) {
			b.WriteRune(r)
			continue
		}
		writeUnicodeEscape(&b, r, "\\u%04x")
	}
	return b.String()
}

func identifierRune(r rune, first bool) bool {
	if r == '$' || r == '_' || unicode.IsLetter(r) ||
		unicode.In(r, unicode.Sc, unicode.Pc, unicode.Nl) {
		return true
	}
	if first {
		return false
	}
	return unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Cf) ||
		(r <= 0x08) || (r >= 0x0e && r <= 0x1b) || (r >= 0x7f && r <= 0x9f)
}

// writeUnicodeEscape writes r as one or two UTF-16 code unit escapes.
func writeUnicodeEscape(b *strings.Builder, r rune, verb string) {
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(b, verb, hi)
		fmt.Fprintf(b, verb, lo)
		return
	}
	fmt.Fprintf(b, verb, r)
}
