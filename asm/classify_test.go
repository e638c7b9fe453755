package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyLine(t *testing.T, line string) []Component {
	tokens, err := Split(line)
	assert.NoError(t, err, line)

	return Classify(tokens, SourceLocation{File: "test.s", Line: line})
}

func TestClassify_Label(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]Component{
		Label{Name: "label:"},
	}, classifyLine(t, "label: "))

	assert.Equal([]Component{
		Label{Name: "label1:"},
		Label{Name: "label2:"},
	}, classifyLine(t, "label1: label2: "))
}

func TestClassify_Directive(t *testing.T) {
	assert := assert.New(t)

	line := ".directive"
	assert.Equal([]Component{
		Directive{Name: "directive", Args: []string{},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))

	line = ".directive arg1 arg2"
	assert.Equal([]Component{
		Directive{Name: "directive", Args: []string{"arg1", "arg2"},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))

	// Arguments are not classified again.
	line = ".globl main: .text"
	assert.Equal([]Component{
		Directive{Name: "globl", Args: []string{"main:", ".text"},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))
}

func TestClassify_LabelDirective(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		args []string
	}){
		{"label:    \t .directive", []string{}},
		{"label: .directive \targ1 \targ2", []string{"arg1", "arg2"}},
		{"label: .directive 'text text text'", []string{"'text text text'"}},
	}

	for _, entry := range table {
		assert.Equal([]Component{
			Label{Name: "label:"},
			Directive{Name: "directive", Args: entry.args,
				Location: SourceLocation{File: "test.s", Line: entry.line}},
		}, classifyLine(t, entry.line), entry.line)
	}
}

func TestClassify_Instruction(t *testing.T) {
	assert := assert.New(t)

	line := "asm"
	assert.Equal([]Component{
		Instruction{Mnemonic: "asm", Args: []string{},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))

	line = "asm arg1 arg2"
	assert.Equal([]Component{
		Instruction{Mnemonic: "asm", Args: []string{"arg1", "arg2"},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))
}

func TestClassify_LabelInstruction(t *testing.T) {
	assert := assert.New(t)

	line := "label:    \t asm"
	assert.Equal([]Component{
		Label{Name: "label:"},
		Instruction{Mnemonic: "asm", Args: []string{},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))

	line = "label1: label2: asm \targ1 \targ2"
	assert.Equal([]Component{
		Label{Name: "label1:"},
		Label{Name: "label2:"},
		Instruction{Mnemonic: "asm", Args: []string{"arg1", "arg2"},
			Location: SourceLocation{File: "test.s", Line: line}},
	}, classifyLine(t, line))
}

func TestClassify_Empty(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(Classify(nil, SourceLocation{}))
	assert.Empty(Classify([]string{}, SourceLocation{}))
	assert.Empty(classifyLine(t, "   \t, "))
}

func TestClassify_ArgsAreCopied(t *testing.T) {
	assert := assert.New(t)

	tokens := []string{"sw", "$t0", "0($sp)"}
	comps := Classify(tokens, SourceLocation{})
	tokens[1] = "$t1"

	inst, ok := comps[0].(Instruction)
	assert.True(ok)
	assert.Equal([]string{"$t0", "0($sp)"}, inst.Args)
}

func TestComponent_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("main:", Label{Name: "main:"}.String())
	assert.Equal("main", Label{Name: "main:"}.Target())
	assert.Equal(".word 1, 2", Directive{Name: "word", Args: []string{"1", "2"}}.String())
	assert.Equal(".text", Directive{Name: "text"}.String())
	assert.Equal("add $t0, $t1, $t2", Instruction{Mnemonic: "add", Args: []string{"$t0", "$t1", "$t2"}}.String())
	assert.Equal("syscall", Instruction{Mnemonic: "syscall"}.String())

	loc := SourceLocation{File: "a.s", LineNo: 4, Line: "nop"}
	assert.Equal("a.s:5", loc.Position())
	assert.Equal("a.s:5: nop", loc.String())
}
