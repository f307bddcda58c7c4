package machine

import (
	"unicode/utf8"

	"github.com/ezrec/p101/register"
)

// Key is one symbol of the machine's input alphabet.
type Key rune

const (
	KEY_NONE Key = 0 // No key processed yet

	KEY_COMMA         Key = ',' // Begin the fractional part
	KEY_NEGATE        Key = '_' // Make M negative
	KEY_ADD           Key = '+' // M plus A, into A
	KEY_SUBTRACT      Key = '-' // M minus A, into A
	KEY_MULTIPLY      Key = '×' // M times A, into A and R
	KEY_DIVIDE        Key = '÷' // M over A, into A; remainder into R
	KEY_SQRT          Key = '√' // Root of M into A, twice the root into M
	KEY_PRINT         Key = '◊' // Print the selected value
	KEY_TOTAL         Key = '*' // Print, then clear, the selected register
	KEY_CLEAR_ALL     Key = 'r' // Erase every register
	KEY_TRANSFER_DOWN Key = '↓' // Copy M into A
	KEY_TRANSFER_UP   Key = '↑' // Copy M into the selected register
	KEY_EXCHANGE      Key = '↕' // Swap A with the selected register
	KEY_DECIMALS      Key = 'd' // Set the display decimals
	KEY_UNDO          Key = 'u' // Restore the previous key context
	KEY_DEBUG         Key = 'P' // Dump raw machine state
)

// IsDigit reports whether the key is one of the digit keys 0-9.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Digit is the numeric value of a digit key.
func (k Key) Digit() uint8 {
	return uint8(k - '0')
}

// RegisterName resolves a register selector key to the register it
// names.
func (k Key) RegisterName() (name register.Name, ok bool) {
	switch k {
	case 'M', 'A', 'R', 'B', 'C', 'D', 'E', 'F':
		name = register.Name(k)
		ok = true
	}

	return
}

// IsStorage reports whether the key selects one of the storage
// registers B through F.
func (k Key) IsStorage() bool {
	return k >= 'B' && k <= 'F'
}

func (k Key) valid() bool {
	if k.IsDigit() {
		return true
	}
	if _, ok := k.RegisterName(); ok {
		return true
	}

	switch k {
	case KEY_COMMA, KEY_NEGATE,
		KEY_ADD, KEY_SUBTRACT, KEY_MULTIPLY, KEY_DIVIDE, KEY_SQRT,
		KEY_PRINT, KEY_TOTAL, KEY_CLEAR_ALL,
		KEY_TRANSFER_DOWN, KEY_TRANSFER_UP, KEY_EXCHANGE,
		KEY_DECIMALS, KEY_UNDO, KEY_DEBUG:
		return true
	}

	return false
}

func (k Key) String() string {
	if k == KEY_NONE {
		return "none"
	}

	return string(rune(k))
}

// ParseKey interprets a token as one key of the alphabet. Tokens that
// are empty, hold more than one symbol, or name no key fail with
// ErrKeyInvalid; callers discard such tokens without pressing anything.
func ParseKey(token string) (key Key, err error) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) || r == utf8.RuneError {
		err = ErrKeyInvalid(token)
		return
	}

	key = Key(r)
	if !key.valid() {
		key = KEY_NONE
		err = ErrKeyInvalid(token)
	}

	return
}
