// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/micah-mips/micah/asm"
	"github.com/micah-mips/micah/emulator"
)

func main() {
	var verbose bool
	var strict bool
	var listing bool
	defines := map[string]string{}

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&strict, "strict", false, "Report stores to invalid addresses")
	flag.BoolVar(&listing, "l", false, "Print the parsed program listing")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: requires files as arguments: %v <file> [<file>...]", os.Args[0], os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Memory.Strict = strict
	for name, value := range defines {
		emu.Predefine(name, value)
	}

	for _, name := range flag.Args() {
		inf, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}

		err = emu.Load(name, inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
	}

	prog := emu.Program

	if listing {
		for n, comp := range prog.Components {
			switch comp := comp.(type) {
			case asm.Label:
				fmt.Printf("%5d %v\n", n, comp)
			case asm.Directive:
				fmt.Printf("%5d         %-32v # %v\n", n, comp, comp.Location.Position())
			case asm.Instruction:
				fmt.Printf("%5d         %-32v # %v\n", n, comp, comp.Location.Position())
			}
		}
	}

	instructions := 0
	for range prog.Instructions() {
		instructions++
	}
	directives := 0
	for range prog.Directives() {
		directives++
	}

	log.Printf("%v: %d components, %d labels, %d instructions, %d directives",
		os.Args[0], prog.Len(), len(prog.Labels), instructions, directives)
}
