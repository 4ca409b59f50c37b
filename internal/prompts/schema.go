package prompts

import (
	"strings"
	"unicode/utf16"
)

// SchemaDraft identifies the JSON Schema dialect of generated schemas.
const SchemaDraft = "http://json-schema.org/draft-07/schema#"

const hexDigits = "0123456789abcdef"

// GenerateSchema returns a minimal draft-07 schema requiring one string
// property per field name, serialized with two-space indentation.
//
// Properties keep first-occurrence order and appear once per distinct
// name; required lists every input name as given. Strings are written
// ASCII-only: non-ASCII runes become \uXXXX escapes and HTML characters
// are left alone.
func GenerateSchema(fields []string) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString(`  "$schema": ` + quoteASCII(SchemaDraft) + ",\n")
	b.WriteString(`  "type": "object",` + "\n")

	seen := make(map[string]bool, len(fields))
	properties := make([]string, 0, len(fields))
	for _, name := range fields {
		if seen[name] {
			continue
		}
		seen[name] = true
		properties = append(properties, "    "+quoteASCII(name)+": {\n      \"type\": \"string\"\n    }")
	}
	b.WriteString(`  "properties": `)
	writeBlock(&b, "{", "}", properties)
	b.WriteString(",\n")

	required := make([]string, len(fields))
	for i, name := range fields {
		required[i] = "    " + quoteASCII(name)
	}
	b.WriteString(`  "required": `)
	writeBlock(&b, "[", "]", required)
	b.WriteString(",\n")

	b.WriteString(`  "additionalProperties": false` + "\n}")
	return b.String()
}

func writeBlock(b *strings.Builder, open, close string, items []string) {
	if len(items) == 0 {
		b.WriteString(open + close)
		return
	}
	b.WriteString(open + "\n")
	b.WriteString(strings.Join(items, ",\n"))
	b.WriteString("\n  " + close)
}

// quoteASCII renders s as a JSON string literal using only ASCII bytes.
func quoteASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case r < 0x20:
			writeUnicodeEscape(&b, r)
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			writeUnicodeEscape(&b, hi)
			writeUnicodeEscape(&b, lo)
		default:
			// Invalid UTF-8 decodes to U+FFFD and is written as such.
			writeUnicodeEscape(&b, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(r>>uint(shift))&0xF])
	}
}
