// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ezrec/p101/register"
)

// Machine is the calculating machine: the register bank plus the
// previous-key context that gives most keys their meaning.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Bank register.Bank // The eight named registers.

	PrevKey   Key // Context: the key processed before the current one.
	BackupKey Key // Context one step older; one level of undo.

	decimals int // Fractional digits displayed and retained by writes.
}

// New creates a machine with cleared registers and no key context.
func New() (m *Machine) {
	m = &Machine{}

	return
}

// Decimals is the configured count of fractional display digits.
func (m *Machine) Decimals() int {
	return m.decimals
}

// SetDecimals carries the follow-up count read by the driver after the
// decimals key. It never touches the key context; Press(KEY_DECIMALS)
// already recorded that.
func (m *Machine) SetDecimals(n int) error {
	if n < 0 {
		return ErrDecimals
	}
	m.decimals = n

	return nil
}

// Press processes one key to completion, returning the line the
// machine prints (empty for silent keys) or the condition it reports.
// Either way the machine is ready for the next key; no condition is
// fatal.
func (m *Machine) Press(k Key) (out string, err error) {
	if m.Verbose {
		log.Printf("machine: key %v", k)
	}

	update := true

	switch {
	case k.IsDigit():
		err = m.enterDigit(k.Digit())
	case k == KEY_COMMA:
		// Only meaningful right after a digit. Otherwise the comma
		// leaves even the key context alone, so an interrupted entry
		// continues where it left off.
		if m.PrevKey.IsDigit() {
			m.Bank.M.SetFloat()
		} else {
			update = false
		}
	case k == KEY_NEGATE:
		m.Bank.M.SetSign(register.SIGN_NEGATIVE)
	case k == KEY_ADD:
		err = m.Bank.A.Write(m.Bank.M.Read().Add(m.Bank.A.Read()), m.decimals)
	case k == KEY_SUBTRACT:
		err = m.Bank.A.Write(m.Bank.M.Read().Sub(m.Bank.A.Read()), m.decimals)
	case k == KEY_MULTIPLY:
		out, err = m.multiply()
	case k == KEY_DIVIDE:
		out, err = m.divide()
	case k == KEY_SQRT:
		out, err = m.sqrt()
	case k == KEY_PRINT:
		out = m.print()
	case k == KEY_TOTAL:
		out = m.total()
	case k == KEY_CLEAR_ALL:
		m.Bank.ClearAll()
	case k == KEY_TRANSFER_DOWN:
		err = m.Bank.Move(register.M, register.A)
	case k == KEY_TRANSFER_UP:
		if m.PrevKey.IsStorage() {
			name, _ := m.PrevKey.RegisterName()
			err = m.Bank.Move(register.M, name)
		}
	case k == KEY_EXCHANGE:
		m.exchange()
	case k == KEY_DECIMALS:
		// The follow-up count arrives via SetDecimals; only the
		// context changes here.
	case k == KEY_UNDO:
		m.PrevKey = m.BackupKey
		update = false
	case k == KEY_DEBUG:
		// Observed externally via String; nothing to mutate.
	default:
		if _, ok := k.RegisterName(); !ok {
			err = ErrKeyInvalid(k.String())
			update = false
		}
		// Register selector keys only adjust the context.
	}

	if update {
		m.BackupKey, m.PrevKey = m.PrevKey, k
	}

	if m.Verbose && err != nil {
		log.Printf("machine: key %v: %v", k, err)
	}

	return
}

// enterDigit appends d to the running entry in M, or begins a fresh
// entry when the context is not a digit or comma.
func (m *Machine) enterDigit(d uint8) (err error) {
	reg := &m.Bank.M

	if m.PrevKey.IsDigit() || m.PrevKey == KEY_COMMA {
		if reg.Full() {
			return ErrRegisterFull
		}
		reg.Shift()
		reg.SetUnits(d)

		return
	}

	reg.Erase()
	reg.SetUnits(d)

	return
}

func (m *Machine) multiply() (out string, err error) {
	product := m.Bank.M.Read().Mul(m.Bank.A.Read())

	err = m.Bank.A.Write(product, m.decimals)
	if err != nil {
		return
	}

	// R keeps the full product, not the display-truncated one.
	err = m.Bank.R.Write(product, register.MAX_FLOAT)
	if err != nil {
		return
	}

	out = Format(product, m.decimals)

	return
}

func (m *Machine) divide() (out string, err error) {
	divisor := m.Bank.A.Read()
	if divisor.IsZero() {
		err = ErrDivisionByZero
		return
	}

	quotient, remainder := m.Bank.M.Read().QuoRem(divisor, int32(m.decimals))

	err = m.Bank.A.Write(quotient, m.decimals)
	if err != nil {
		return
	}

	// Whole-number division leaves the remainder in R.
	if m.decimals == 0 {
		err = m.Bank.R.Write(remainder, 0)
		if err != nil {
			return
		}
	}

	out = Format(quotient, m.decimals)

	return
}

func (m *Machine) sqrt() (out string, err error) {
	operand := m.Bank.M.Read()
	if operand.IsNegative() {
		err = ErrNegativeOperand
		return
	}

	root := sqrtTruncated(operand)

	err = m.Bank.A.Write(root, m.decimals)
	if err != nil {
		return
	}

	// The machine leaves twice the root behind in M.
	err = m.Bank.M.Write(root.Mul(decimal.NewFromInt(2)), m.decimals)
	if err != nil {
		return
	}

	out = Format(root, m.decimals)

	return
}

// sqrtTruncated extracts the square root with MAX_FLOAT fractional
// digits, truncated toward zero: an exact integer square root over the
// scaled operand, never a rounded binary float.
func sqrtTruncated(v decimal.Decimal) decimal.Decimal {
	scaled := v.Shift(2 * register.MAX_FLOAT).BigInt()
	root := new(big.Int).Sqrt(scaled)

	return decimal.NewFromBigInt(root, -register.MAX_FLOAT)
}

// print renders the register the context selects: a storage register
// raw, anything else M through the formatter.
func (m *Machine) print() string {
	if m.PrevKey.IsStorage() {
		name, _ := m.PrevKey.RegisterName()
		reg, _ := m.Bank.Get(name)

		return reg.Read().String()
	}

	return Format(m.Bank.M.Read(), m.decimals)
}

// total renders the selected register raw and then erases it, except R
// which survives its printing. Without a selecting context it falls
// back to a formatted M, erasing nothing.
func (m *Machine) total() string {
	if name, ok := m.PrevKey.RegisterName(); ok && name != register.M {
		reg, _ := m.Bank.Get(name)
		out := reg.Read().String()

		if name != register.R {
			reg.Erase()
		}

		return out
	}

	return Format(m.Bank.M.Read(), m.decimals)
}

// exchange swaps A with the selected storage register, or clears A's
// sign when the context is A itself.
func (m *Machine) exchange() {
	switch {
	case m.PrevKey == 'A':
		m.Bank.A.SetSign(register.SIGN_POSITIVE)
	case m.PrevKey.IsStorage():
		name, _ := m.PrevKey.RegisterName()
		reg, _ := m.Bank.Get(name)
		m.Bank.A, *reg = *reg, m.Bank.A
	}
}

// String returns the raw machine state: every register's slot layout,
// the display decimals, and the key context.
func (m *Machine) String() (text string) {
	for name, reg := range m.Bank.All() {
		text += fmt.Sprintf("% 8s: %v\n", name, reg)
	}
	text += fmt.Sprintf("% 8s: %v\n", "decimals", m.decimals)
	text += fmt.Sprintf("% 8s: %v\n", "last", m.PrevKey)
	text += fmt.Sprintf("% 8s: %v\n", "undo", m.BackupKey)

	return
}
