package emulator

import (
	"strings"

	"github.com/micah-mips/micah/asm"
	"github.com/micah-mips/micah/cpu"
	"github.com/micah-mips/micah/memory"
)

// Handler executes one instruction against the machine state.
type Handler func(args []string, regs *cpu.Registers, mem *memory.Memory) error

// Dispatch maps lower case mnemonics to their handlers.
type Dispatch map[string]Handler

// Handle registers a handler for a mnemonic.
func (dp Dispatch) Handle(mnemonic string, handler Handler) {
	dp[strings.ToLower(mnemonic)] = handler
}

// Lookup finds the handler of a mnemonic, ignoring case.
func (dp Dispatch) Lookup(mnemonic string) (handler Handler, ok bool) {
	handler, ok = dp[strings.ToLower(mnemonic)]
	return
}

// Execute runs the handler of an instruction.
func (dp Dispatch) Execute(inst *asm.Instruction, regs *cpu.Registers, mem *memory.Memory) (err error) {
	handler, ok := dp.Lookup(inst.Mnemonic)
	if !ok {
		err = ErrInstructionUnknown
		return
	}

	err = handler(inst.Args, regs, mem)

	return
}
