// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// DEFAULT_COMMENT starts a comment in MIPS source.
const DEFAULT_COMMENT = '#'

// Parser reads MIPS source into a Program, one line at a time.
type Parser struct {
	Verbose   bool // If set, verbosely logs each parsed line.
	Tokenizer      // Line tokenizer.

	predefine map[string]string // Predefines for $(...) expressions.
}

// NewParser creates a parser for '#' commented source.
func NewParser() (p *Parser) {
	p = &Parser{
		Tokenizer: Tokenizer{Comment: DEFAULT_COMMENT, Expression: true},
	}

	return
}

// Predefine defines a new constant or redefines an existing one.
func (p *Parser) Predefine(name string, value string) {
	if p.predefine == nil {
		p.predefine = map[string]string{name: value}
	} else {
		p.predefine[name] = value
	}
}

// evaluate does a compile-time $(...) evaluation.
func (p *Parser) evaluate(expr string, loc SourceLocation) (value int64, err error) {
	thread := starlark.Thread{Name: loc.Position()}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(loc.LineNo + 1),
	}
	for key, str := range p.predefine {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// closing finds the parenthesis balancing the one at open, or -1.
func closing(text string, open int) int {
	depth := 0
	for n := open; n < len(text); n++ {
		switch text[n] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return n
			}
		}
	}

	return -1
}

// expand replaces every unquoted $(...) of a token with its decimal value.
func (p *Parser) expand(token string, loc SourceLocation) (expanded string, err error) {
	if !strings.Contains(token, "$(") {
		expanded = token
		return
	}

	var sb strings.Builder
	var quote byte
	escaped := false

	for pos := 0; pos < len(token); pos++ {
		c := token[pos]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case strings.HasPrefix(token[pos:], "$("):
			end := closing(token, pos+1)
			if end < 0 {
				err = ErrParseExpression(token[pos:])
				return
			}
			var value int64
			value, err = p.evaluate(token[pos+2:end], loc)
			if err != nil {
				return
			}
			sb.WriteString(strconv.FormatInt(value, 10))
			pos = end
			continue
		}
		sb.WriteByte(c)
	}

	expanded = sb.String()

	return
}

// ParseLine parses the text of a source location into components.
// Compile-time expressions are expanded after tokenizing, so comments
// and quoted text are never evaluated.
func (p *Parser) ParseLine(loc SourceLocation) (comps []Component, err error) {
	tokens, err := p.Tokenizer.Split(loc.Line)
	if err != nil {
		return
	}

	for n, token := range tokens {
		tokens[n], err = p.expand(token, loc)
		if err != nil {
			return
		}
	}

	comps = Classify(tokens, loc)

	return
}

// Parse parses an input stream into a new Program.
func (p *Parser) Parse(name string, input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	err = p.ParseTo(prog, name, input)
	if err != nil {
		prog = nil
	}

	return
}

// ParseTo parses an input stream, appending its components to prog.
// On error prog is left as it was before the call.
func (p *Parser) ParseTo(prog *Program, name string, input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var loc SourceLocation

	start := prog.Len()
	defer func() {
		if err != nil {
			prog.truncate(start)
			err = &ErrSyntax{Location: loc, Err: err}
		}
	}()

	for lineno := 0; scanner.Scan(); lineno++ {
		loc = SourceLocation{File: name, LineNo: lineno, Line: scanner.Text()}

		if p.Verbose {
			log.Printf("%v", loc)
		}

		var comps []Component
		comps, err = p.ParseLine(loc)
		if err != nil {
			return
		}

		err = prog.Append(comps...)
		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}

// Predefines returns a copy of the parser predefines.
func (p *Parser) Predefines() map[string]string {
	return maps.Clone(p.predefine)
}
