// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/micah-mips/micah/asm"
	"github.com/micah-mips/micah/cpu"
	"github.com/micah-mips/micah/internal"
	"github.com/micah-mips/micah/memory"
)

const (
	DATA_BASE  = memory.PAGE_SIZE       // First addressable byte.
	STACK_BASE = memory.MEMORY_SIZE - 4 // Highest word aligned address.
)

var _emulator_defines = map[string]string{
	"DATA_BASE":  fmt.Sprintf("%v", DATA_BASE),
	"STACK_BASE": fmt.Sprintf("%v", STACK_BASE),
}

// Emulator state. Program + registers + memory + instruction dispatch.
type Emulator struct {
	Verbose   bool           // If set, enables verbose logging.
	Program   *asm.Program   // Components of all loaded sources.
	Registers *cpu.Registers // Register file.
	Memory    *memory.Memory // Paged memory.
	Dispatch  Dispatch       // Instruction handlers by mnemonic.

	predefine map[string]string // User predefines, overriding Defines().
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:   &asm.Program{},
		Registers: &cpu.Registers{},
		Memory:    memory.NewMemory(),
		Dispatch:  Dispatch{},
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		memory.Defines(),
		cpu.Defines(),
	)
}

// Predefine defines a constant for $(...) expressions of loaded sources.
func (emu *Emulator) Predefine(name string, value string) {
	if emu.predefine == nil {
		emu.predefine = map[string]string{name: value}
	} else {
		emu.predefine[name] = value
	}
}

// Reset the machine state. The loaded program is kept.
func (emu *Emulator) Reset() {
	emu.Registers.Reset()
	emu.Memory.Reset()
}

// Load parses a source into the program. Its components follow those of
// previously loaded sources.
func (emu *Emulator) Load(name string, input io.Reader) (err error) {
	p := asm.NewParser()
	p.Verbose = emu.Verbose
	for key, value := range emu.Defines() {
		p.Predefine(key, value)
	}
	for key, value := range emu.predefine {
		p.Predefine(key, value)
	}

	if emu.Verbose {
		log.Printf("emulator: load %v", name)
	}

	err = p.ParseTo(emu.Program, name, input)

	return
}

// Execute dispatches a single instruction.
func (emu *Emulator) Execute(inst *asm.Instruction) (err error) {
	emu.Registers.Verbose = emu.Verbose
	emu.Memory.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: %v", inst)
	}

	err = emu.Dispatch.Execute(inst, emu.Registers, emu.Memory)
	if err != nil {
		err = &ErrRuntime{Location: inst.Location, Err: err}
	}

	return
}
