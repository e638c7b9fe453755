// Package memory models the addressable memory of the MIPS target as a
// sparse array of fixed size pages.
//
// Pages are allocated on the first store into them and are filled with
// PAGE_FILL so that uninitialized reads stand out. Page 0 is reserved:
// every access into it is a null access, allocated or not.
package memory

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

const (
	PAGE_SIZE   = 4000                  // Bytes per page.
	NUM_PAGES   = 500                   // Pages in the address space.
	MEMORY_SIZE = PAGE_SIZE * NUM_PAGES // Bytes in the address space.
	PAGE_FILL   = 0x66                  // Initial value of every byte of a new page.
)

var _memory_defines = map[string]string{
	"PAGE_SIZE":   fmt.Sprintf("%v", PAGE_SIZE),
	"NUM_PAGES":   fmt.Sprintf("%v", NUM_PAGES),
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"PAGE_FILL":   fmt.Sprintf("%#x", PAGE_FILL),
}

// Page is a single block of backing storage.
type Page [PAGE_SIZE]byte

// Memory is the paged address space. The zero value is an empty,
// permissive memory.
type Memory struct {
	Verbose bool // If set, logs page allocation and dropped stores.
	Strict  bool // If set, stores to invalid addresses return their fault.
	Dropped int  // Count of stores silently dropped in permissive mode.

	pages [NUM_PAGES](*Page)
}

// NewMemory creates an empty permissive memory.
func NewMemory() (mem *Memory) {
	mem = &Memory{}

	return
}

// Defines returns the memory geometry as predefines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// split returns the page index and page offset of an address.
func split(addr uint32) (index int, offset int) {
	index = int(addr / PAGE_SIZE)
	offset = int(addr % PAGE_SIZE)
	return
}

// checkIndex validates a page index against the reserved page and the
// page count.
func checkIndex(index int) (err error) {
	switch {
	case index == 0:
		err = ErrNullAccess
	case index >= NUM_PAGES:
		err = ErrOverflow
	}
	return
}

// page returns the allocated page holding addr.
func (mem *Memory) page(addr uint32) (page *Page, offset int, err error) {
	index, offset := split(addr)

	err = checkIndex(index)
	if err != nil {
		return
	}

	page = mem.pages[index]
	if page == nil {
		err = ErrPageFault
	}

	return
}

// allocate installs a fresh page at index.
func (mem *Memory) allocate(index int) (page *Page) {
	page = &Page{}
	for n := range page {
		page[n] = PAGE_FILL
	}
	mem.pages[index] = page

	if mem.Verbose {
		log.Printf("memory: allocate page %d", index)
	}

	return
}

// Reset releases all pages.
func (mem *Memory) Reset() {
	clear(mem.pages[:])
	mem.Dropped = 0
}

// Allocated reports if the page at index has backing storage.
func (mem *Memory) Allocated(index int) bool {
	if index < 0 || index >= NUM_PAGES {
		return false
	}

	return mem.pages[index] != nil
}

// Pages iterates over the allocated pages in index order.
func (mem *Memory) Pages() iter.Seq2[int, *Page] {
	return func(yield func(index int, page *Page) bool) {
		for index, page := range mem.pages {
			if page == nil {
				continue
			}
			if !yield(index, page) {
				return
			}
		}
	}
}

// ReadByte reads the byte at addr.
func (mem *Memory) ReadByte(addr uint32) (value byte, err error) {
	page, offset, err := mem.page(addr)
	if err != nil {
		err = &ErrFault{Addr: addr, Err: err}
		return
	}

	value = page[offset]

	return
}

// ReadWord reads the big-endian word starting at addr.
// The fault of the first unreadable byte is returned.
func (mem *Memory) ReadWord(addr uint32) (value uint32, err error) {
	var word uint32
	for n := range uint32(4) {
		var b byte
		b, err = mem.ReadByte(addr + n)
		if err != nil {
			return
		}
		word = (word << 8) | uint32(b)
	}

	value = word

	return
}

// StoreByte writes the byte at addr, allocating its page if needed.
//
// A store to the reserved page or beyond the last page is dropped. In
// permissive mode it is still reported as a success; in strict mode the
// fault is returned.
func (mem *Memory) StoreByte(addr uint32, value byte) (err error) {
	page, offset, err := mem.page(addr)
	switch {
	case err == nil:
	case errors.Is(err, ErrPageFault):
		index, _ := split(addr)
		page = mem.allocate(index)
		err = nil
	default:
		err = mem.drop(addr, err)
		return
	}

	page[offset] = value

	return
}

// drop applies the store policy to a fault.
func (mem *Memory) drop(addr uint32, fault error) (err error) {
	if mem.Strict {
		err = &ErrFault{Addr: addr, Err: fault}
		return
	}

	mem.Dropped++
	if mem.Verbose {
		log.Printf("memory: drop store at 0x%08x: %v", addr, fault)
	}

	return
}

// StoreWord writes value as four big-endian bytes starting at addr.
//
// In strict mode all four addresses are checked before any byte is
// written.
func (mem *Memory) StoreWord(addr uint32, value uint32) (err error) {
	if mem.Strict {
		for n := range uint32(4) {
			index, _ := split(addr + n)
			fault := checkIndex(index)
			if fault != nil {
				err = &ErrFault{Addr: addr + n, Err: fault}
				return
			}
		}
	}

	var bytes [4]byte
	binary.BigEndian.PutUint32(bytes[:], value)
	for n, b := range bytes {
		err = mem.StoreByte(addr+uint32(n), b)
		if err != nil {
			return
		}
	}

	return
}
