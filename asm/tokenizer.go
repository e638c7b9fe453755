package asm

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits lines into tokens on whitespace and commas.
//
// Single or double quoted spans are kept whole, quotes included, and a
// backslash escapes the next character both inside and outside quotes.
//
// With Expression set, an unquoted $(...) span is also kept whole, up to
// its balancing parenthesis, so expressions may contain separators and
// the comment character.
type Tokenizer struct {
	Comment    rune // Comment character ending the line, or 0 for none.
	Expression bool // If set, $(...) spans are not split.
}

// Tokens splits a line with a tokenizer that has no comment character.
func Tokens(line string) iter.Seq2[string, error] {
	return Tokenizer{}.Tokens(line)
}

// Split collects the tokens of a line with a tokenizer that has no
// comment character.
func Split(line string) (tokens []string, err error) {
	return Tokenizer{}.Split(line)
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// Tokens returns the token sequence of a line. A malformed token ends
// the sequence with its error. Each iteration rescans the line.
func (tk Tokenizer) Tokens(line string) iter.Seq2[string, error] {
	return func(yield func(token string, err error) bool) {
		pos := 0
		for {
			token, next, err := tk.scan(line, pos)
			if err != nil {
				yield("", err)
				return
			}
			if len(token) == 0 {
				return
			}
			if !yield(token, nil) {
				return
			}
			pos = next
		}
	}
}

// Split collects all the tokens of a line.
func (tk Tokenizer) Split(line string) (tokens []string, err error) {
	for token, tkerr := range tk.Tokens(line) {
		if tkerr != nil {
			err = tkerr
			tokens = nil
			return
		}
		tokens = append(tokens, token)
	}

	return
}

// scan finds the first token at or after pos. An empty token means the
// line has no more tokens.
func (tk Tokenizer) scan(line string, pos int) (token string, next int, err error) {
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		if !isSeparator(r) {
			break
		}
		pos += size
	}

	start := pos

	escaped := false
	var quote rune
	depth := 0

scan:
	for pos < len(line) {
		r, size := utf8.DecodeRuneInString(line[pos:])
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == '\\' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case depth > 0:
			switch r {
			case '(':
				depth++
			case ')':
				depth--
			}
		case r == '\\':
			escaped = true
		case r == '\'' || r == '"':
			quote = r
		case tk.Expression && strings.HasPrefix(line[pos:], "$("):
			depth = 1
			pos += len("$(")
			continue scan
		case isSeparator(r):
			break scan
		case tk.Comment != 0 && r == tk.Comment:
			if pos == start {
				// Rest of the line is a comment.
				start = len(line)
				pos = start
			}
			break scan
		}
		pos += size
	}

	token = line[start:pos]
	next = pos

	switch {
	case quote != 0:
		err = &ErrToken{Column: start, Token: token, Err: ErrQuoteUnterminated}
	case escaped:
		err = &ErrToken{Column: start, Token: token, Err: ErrEscapeDangling}
	}

	return
}
