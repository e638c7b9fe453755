package cpu

import (
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_GetSet(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}

	reg, ok := LookupRegister("a1")
	assert.True(ok)
	assert.Equal(REG_A1, reg)

	assert.NoError(regs.Set(reg, 57))
	assert.Equal(uint32(57), regs.Get(reg))

	assert.NoError(regs.Set(REG_SP, 0xffffffff))
	assert.Equal(uint32(0xffffffff), regs.Get(REG_SP))

	regs.Reset()
	assert.Equal(uint32(0), regs.Get(REG_A1))
	assert.Equal(uint32(0), regs.Get(REG_SP))
}

func TestRegisters_WriteRejected(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}

	for _, name := range []string{"zero", "k0", "k1"} {
		reg, ok := LookupRegister(name)
		assert.True(ok, name)
		assert.False(reg.Writable(), name)

		err := regs.Set(reg, 57)
		assert.ErrorIs(err, ErrWriteRejected, name)

		var werr *ErrRegisterWrite
		if assert.True(errors.As(err, &werr), name) {
			assert.Equal(reg, werr.Register)
		}
		assert.Equal(uint32(0), regs.Get(reg), name)
	}
}

func TestRegisters_ZeroHardwired(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	regs.Value[REG_ZERO] = 0x1234

	assert.Equal(uint32(0), regs.Get(REG_ZERO))
}

func TestRegisters_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	for n := range REG_COUNT {
		regs.Value[n] = 0xffffffff
	}

	for _, reg := range []Register{REG_COUNT, REG_COUNT + 1, -1, 1000} {
		assert.NotPanics(func() { regs.Get(reg) }, "%v", int(reg))
		assert.Equal(uint32(0), regs.Get(reg), "%v", int(reg))
		assert.False(reg.Writable(), "%v", int(reg))
		assert.ErrorIs(regs.Set(reg, 1), ErrWriteRejected, "%v", int(reg))
	}
}

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		reg  Register
		ok   bool
	}){
		{"zero", REG_ZERO, true},
		{"ZERO", REG_ZERO, true},
		{"$zero", REG_ZERO, true},
		{"at", REG_AT, true},
		{"v1", REG_V1, true},
		{"a3", REG_A3, true},
		{"T0", REG_T0, true},
		{"t7", REG_T7, true},
		{"s0", REG_S0, true},
		{"S7", REG_S7, true},
		{"t8", REG_T8, true},
		{"$t9", REG_T9, true},
		{"k0", REG_K0, true},
		{"k1", REG_K1, true},
		{"gp", REG_GP, true},
		{"$sp", REG_SP, true},
		{"fp", REG_FP, true},
		{"ra", REG_RA, true},
		{"$0", REG_ZERO, true},
		{"$29", REG_SP, true},
		{"$31", REG_RA, true},
		{"$32", 0, false},
		{"29", 0, false},
		{"$", 0, false},
		{"t10", 0, false},
		{"pc", 0, false},
		{"", 0, false},
	}

	for _, entry := range table {
		reg, ok := LookupRegister(entry.name)
		assert.Equal(entry.ok, ok, entry.name)
		if entry.ok {
			assert.Equal(entry.reg, reg, entry.name)
		}
	}
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("zero", REG_ZERO.String())
	assert.Equal("sp", REG_SP.String())
	assert.Equal("ra", REG_RA.String())
	assert.Equal("Register(32)", Register(32).String())

	for reg := range Register(REG_COUNT) {
		found, ok := LookupRegister(reg.String())
		assert.True(ok)
		assert.Equal(reg, found)
	}
}

func TestRegisters_String(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	assert.NoError(regs.Set(REG_T0, 0xdeadbeef))

	text := regs.String()
	assert.Equal(8, strings.Count(text, "\n"))
	assert.Contains(text, "t0: DEAD_BEEF")
	assert.Contains(text, "zero: 0000_0000")
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(Defines())
	assert.Equal("32", defines["REG_COUNT"])
	assert.Equal("29", defines["REG_SP"])
	assert.Equal("0", defines["REG_ZERO"])
	assert.Len(defines, REG_COUNT+1)
}
