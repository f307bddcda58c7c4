package register

import (
	"iter"
)

// Name selects one register of the bank.
type Name rune

const (
	M Name = 'M' // Keyboard operand
	A Name = 'A' // Accumulator
	R Name = 'R' // Remainder and full product
	B Name = 'B'
	C Name = 'C'
	D Name = 'D'
	E Name = 'E'
	F Name = 'F'
)

func (n Name) String() string {
	return string(rune(n))
}

// Bank is the machine's full complement of registers.
type Bank struct {
	M Register
	A Register
	R Register
	B Register
	C Register
	D Register
	E Register
	F Register
}

// Get resolves a register name to its uniquely owned register. The
// eight fixed names never fail; anything else is ErrNameUnknown.
func (b *Bank) Get(name Name) (reg *Register, err error) {
	switch name {
	case M:
		reg = &b.M
	case A:
		reg = &b.A
	case R:
		reg = &b.R
	case B:
		reg = &b.B
	case C:
		reg = &b.C
	case D:
		reg = &b.D
	case E:
		reg = &b.E
	case F:
		reg = &b.F
	default:
		err = ErrNameUnknown
	}

	return
}

// All yields the registers in panel order: M, A, R, then B through F.
func (b *Bank) All() iter.Seq2[Name, *Register] {
	return func(yield func(Name, *Register) bool) {
		for _, name := range []Name{M, A, R, B, C, D, E, F} {
			reg, _ := b.Get(name)
			if !yield(name, reg) {
				return
			}
		}
	}
}

// ClearAll erases every register in the bank.
func (b *Bank) ClearAll() {
	for _, reg := range b.All() {
		reg.Erase()
	}
}

// Move copies from's full digit, sign and float state into to. The
// source register is untouched, and the two registers never alias.
func (b *Bank) Move(from, to Name) error {
	src, err := b.Get(from)
	if err != nil {
		return err
	}
	dst, err := b.Get(to)
	if err != nil {
		return err
	}

	*dst = *src

	return nil
}
