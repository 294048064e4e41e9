package dsl

import (
	"strings"
)

// token is one lexical item on a node line.
type token struct {
	text   string
	quoted bool
	// unterminated is set for a quoted token that ran to end of line.
	unterminated bool
}

// measureIndent counts leading spaces and tabs. Each counts as one.
func measureIndent(line string) (int, string) {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i, line[i:]
		}
	}
	return len(line), ""
}

// lexLine splits the body of a node line into bare words and quoted strings.
// A quote may start mid-word ("x"y is two tokens) and a closing quote ends
// the string even when text follows.
func lexLine(s string) []token {
	var toks []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '"':
			text, n, ok := readQuoted(s[i:])
			toks = append(toks, token{text: text, quoted: true, unterminated: !ok})
			i += n
		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != '"' {
				j++
			}
			toks = append(toks, token{text: s[i:j]})
			i = j
		}
	}
	return toks
}

// readQuoted reads a double-quoted string starting at s[0]. It returns the
// unescaped text, the number of bytes consumed, and whether a closing quote
// was found.
func readQuoted(s string) (string, int, bool) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
				b.WriteByte(s[i+1])
				i++
				continue
			}
			b.WriteByte('\\')
		case '"':
			return b.String(), i + 1, true
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), len(s), false
}
