package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"
)

// Register identifies a general purpose register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_ZERO = Register(0)  // zero
	REG_AT   = Register(1)  // at
	REG_V0   = Register(2)  // v0
	REG_V1   = Register(3)  // v1
	REG_A0   = Register(4)  // a0
	REG_A1   = Register(5)  // a1
	REG_A2   = Register(6)  // a2
	REG_A3   = Register(7)  // a3
	REG_T0   = Register(8)  // t0
	REG_T1   = Register(9)  // t1
	REG_T2   = Register(10) // t2
	REG_T3   = Register(11) // t3
	REG_T4   = Register(12) // t4
	REG_T5   = Register(13) // t5
	REG_T6   = Register(14) // t6
	REG_T7   = Register(15) // t7
	REG_S0   = Register(16) // s0
	REG_S1   = Register(17) // s1
	REG_S2   = Register(18) // s2
	REG_S3   = Register(19) // s3
	REG_S4   = Register(20) // s4
	REG_S5   = Register(21) // s5
	REG_S6   = Register(22) // s6
	REG_S7   = Register(23) // s7
	REG_T8   = Register(24) // t8
	REG_T9   = Register(25) // t9
	REG_K0   = Register(26) // k0
	REG_K1   = Register(27) // k1
	REG_GP   = Register(28) // gp
	REG_SP   = Register(29) // sp
	REG_FP   = Register(30) // fp
	REG_RA   = Register(31) // ra
)

// REG_COUNT is the number of general purpose registers.
const REG_COUNT = 32

// regMap maps register names to registers.
var regMap = make(map[string]Register, REG_COUNT)

var _cpu_defines = map[string]string{
	"REG_COUNT": fmt.Sprintf("%v", REG_COUNT),
}

func init() {
	for reg := range Register(REG_COUNT) {
		regMap[reg.String()] = reg
		_cpu_defines["REG_"+strings.ToUpper(reg.String())] = fmt.Sprintf("%v", int(reg))
	}
}

// Defines for the cpu.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// LookupRegister finds a register by name, ignoring case. A leading '$'
// is allowed, as is the numeric form $0 to $31.
func LookupRegister(name string) (reg Register, ok bool) {
	name, dollar := strings.CutPrefix(strings.ToLower(name), "$")

	reg, ok = regMap[name]
	if ok || !dollar {
		return
	}

	index, err := strconv.ParseUint(name, 10, 8)
	if err != nil || index >= REG_COUNT {
		return
	}

	reg = Register(index)
	ok = true

	return
}

// Writable reports if the register accepts writes.
func (reg Register) Writable() bool {
	switch reg {
	case REG_ZERO, REG_K0, REG_K1:
		return false
	}

	return reg >= 0 && reg < REG_COUNT
}

// Registers is the general purpose register file.
type Registers struct {
	Verbose bool              // Set to enable verbose logging.
	Value   [REG_COUNT]uint32 // Register values.
}

// Reset zeros all registers.
func (regs *Registers) Reset() {
	clear(regs.Value[:])
}

// Get reads a register. The zero register, and any id outside the
// register file, always reads as 0.
func (regs *Registers) Get(reg Register) (value uint32) {
	if reg == REG_ZERO || reg < 0 || reg >= REG_COUNT {
		return
	}

	value = regs.Value[reg]

	return
}

// Set writes a register. Writes to zero, k0 and k1 are rejected.
func (regs *Registers) Set(reg Register, value uint32) (err error) {
	if !reg.Writable() {
		err = &ErrRegisterWrite{Register: reg, Err: ErrWriteRejected}
		return
	}

	if regs.Verbose {
		log.Printf("cpu: $%v = 0x%08x", reg, value)
	}

	regs.Value[reg] = value

	return
}

// String returns the register file as a table.
func (regs *Registers) String() (text string) {
	for reg := range Register(REG_COUNT) {
		val := regs.Get(reg)
		text += fmt.Sprintf("% 5s: %04X_%04X", reg, val>>16, val&0xffff)
		if reg%4 == 3 {
			text += "\n"
		} else {
			text += " "
		}
	}

	return
}
