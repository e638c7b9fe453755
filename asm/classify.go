package asm

import (
	"slices"
	"strings"
)

// Classify turns the tokens of one line into components.
//
// Leading tokens ending in ':' are labels. The first other token is
// either a directive, when it starts with '.', or an instruction
// mnemonic; all tokens after it are its arguments, unclassified.
func Classify(tokens []string, loc SourceLocation) (comps []Component) {
	for len(tokens) > 0 && strings.HasSuffix(tokens[0], ":") {
		comps = append(comps, Label{Name: tokens[0]})
		tokens = tokens[1:]
	}

	if len(tokens) == 0 {
		return
	}

	head := tokens[0]
	args := slices.Clone(tokens[1:])
	if args == nil {
		args = []string{}
	}

	if name, ok := strings.CutPrefix(head, "."); ok {
		comps = append(comps, Directive{Name: name, Args: args, Location: loc})
	} else {
		comps = append(comps, Instruction{Mnemonic: head, Args: args, Location: loc})
	}

	return
}
