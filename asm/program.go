package asm

import (
	"iter"

	"github.com/micah-mips/micah/internal"
)

// Program is the ordered component list of one or more source files.
type Program struct {
	Components []Component    // Components in source order.
	Labels     map[string]int // Map of label names to component indexes.
}

// Append adds components to the end of the program, recording labels.
// On a label error nothing is appended.
func (prog *Program) Append(comps ...Component) (err error) {
	names := map[string]bool{}
	for _, comp := range comps {
		label, ok := comp.(Label)
		if !ok {
			continue
		}
		name := label.Target()
		if len(name) == 0 {
			err = ErrLabelEmpty
			return
		}
		_, ok = prog.Labels[name]
		if ok || names[name] {
			err = ErrLabelDuplicate
			return
		}
		names[name] = true
	}

	for _, comp := range comps {
		if label, ok := comp.(Label); ok {
			if prog.Labels == nil {
				prog.Labels = make(map[string]int, 16)
			}
			prog.Labels[label.Target()] = len(prog.Components)
		}

		prog.Components = append(prog.Components, comp)
	}

	return
}

// truncate drops the components from index n onwards, with their labels.
func (prog *Program) truncate(n int) {
	if n >= len(prog.Components) {
		return
	}

	for _, comp := range prog.Components[n:] {
		if label, ok := comp.(Label); ok {
			delete(prog.Labels, label.Target())
		}
	}

	prog.Components = prog.Components[:n]
}

// Resolve finds a label by name, without its colon. It returns the
// index of the label and the first directive or instruction after it,
// which is nil when nothing follows the label.
func (prog *Program) Resolve(name string) (index int, comp Component, err error) {
	index, ok := prog.Labels[name]
	if !ok {
		err = ErrLabelMissing(name)
		return
	}

	for _, next := range prog.Components[index:] {
		if _, ok := next.(Label); ok {
			continue
		}
		comp = next
		break
	}

	return
}

// Instructions iterates over the instructions and their indexes.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return internal.IterSliceOf[Instruction](prog.Components)
}

// Directives iterates over the directives and their indexes.
func (prog *Program) Directives() iter.Seq2[int, Directive] {
	return internal.IterSliceOf[Directive](prog.Components)
}

// Len returns the number of components.
func (prog *Program) Len() int {
	return len(prog.Components)
}
