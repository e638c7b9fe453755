// Package cpu implements the register file of the MIPS target.
//
// The 32 general purpose registers are addressed by their conventional
// names (zero, at, v0-v1, a0-a3, t0-t9, s0-s7, k0-k1, gp, sp, fp, ra) in
// MIPS numeric order. The zero register always reads as 0, and the
// kernel reserved k0 and k1 registers reject writes along with zero.
package cpu
