package asm

import (
	"fmt"
	"strings"
)

// SourceLocation is where a component came from.
type SourceLocation struct {
	File   string // Name of the source file.
	LineNo int    // Zero-based line number.
	Line   string // Raw text of the line.
}

// Position renders the location as file:line, with a one-based line.
func (loc SourceLocation) Position() string {
	return fmt.Sprintf("%v:%d", loc.File, loc.LineNo+1)
}

func (loc SourceLocation) String() string {
	return fmt.Sprintf("%v: %v", loc.Position(), loc.Line)
}

// Component is a parsed unit of source: a Label, Directive or Instruction.
type Component interface {
	fmt.Stringer
	component()
}

// Label marks the position of the component that follows it.
// The name keeps its trailing colon.
type Label struct {
	Name string
}

// Directive is an assembler directive, without its leading dot.
type Directive struct {
	Name     string
	Args     []string
	Location SourceLocation
}

// Instruction is a mnemonic and its arguments.
type Instruction struct {
	Mnemonic string
	Args     []string
	Location SourceLocation
}

func (Label) component()       {}
func (Directive) component()   {}
func (Instruction) component() {}

func (lb Label) String() string {
	return lb.Name
}

// Target is the label name as used by references, without the colon.
func (lb Label) Target() string {
	return strings.TrimSuffix(lb.Name, ":")
}

// listing renders a head word and its comma separated arguments.
func listing(head string, args []string) string {
	if len(args) == 0 {
		return head
	}
	return head + " " + strings.Join(args, ", ")
}

func (dir Directive) String() string {
	return listing("."+dir.Name, dir.Args)
}

func (inst Instruction) String() string {
	return listing(inst.Mnemonic, inst.Args)
}
