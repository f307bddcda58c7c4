// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package register

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DIGITS    = 22 // Digit slots per register
	MAX_FLOAT = 21 // Highest usable decimal point position
)

// Sign of a register's value.
type Sign uint8

const (
	SIGN_POSITIVE Sign = iota // +
	SIGN_NEGATIVE             // -
)

func (s Sign) String() string {
	if s == SIGN_NEGATIVE {
		return "-"
	}

	return "+"
}

// Register is a fixed-capacity decimal digit store. Digit[0] is the
// units (least significant) slot. FloatPos counts the digits that lie
// after the decimal point, from the least significant end; it is only
// meaningful while FloatActive is set.
type Register struct {
	Digit       [DIGITS]uint8
	FloatPos    int
	FloatActive bool
	Sign        Sign
}

// Shift moves every digit one slot toward the most significant end,
// freeing slot 0 for a new units digit. Callers check Full first; a
// shift on a full register loses the top digit.
func (r *Register) Shift() {
	for i := DIGITS - 1; i > 0; i-- {
		r.Digit[i] = r.Digit[i-1]
	}
	r.Digit[0] = 0

	if r.FloatActive {
		r.FloatPos++
	}
}

// Erase resets the register to positive zero with no decimal point.
func (r *Register) Erase() {
	r.Digit = [DIGITS]uint8{}
	r.FloatPos = 0
	r.FloatActive = false
	r.Sign = SIGN_POSITIVE
}

// Full reports whether no further digit can be shifted in without
// losing the most significant digit.
func (r *Register) Full() bool {
	return r.Digit[DIGITS-1] != 0 || r.FloatPos == MAX_FLOAT
}

// SetUnits stores d into slot 0, normally right after a Shift.
func (r *Register) SetUnits(d uint8) {
	r.Digit[0] = d
}

// SetFloat marks the register as accepting fractional digits. The
// decimal point itself consumes no digit slot.
func (r *Register) SetFloat() {
	r.FloatActive = true
}

// SetSign sets the sign without touching the digits.
func (r *Register) SetSign(s Sign) {
	r.Sign = s
}

// Read reconstructs the signed value held in the register. A register
// with a pending decimal point and no fractional digits yet reads as
// its integer part.
func (r *Register) Read() decimal.Decimal {
	var b strings.Builder

	if r.Sign == SIGN_NEGATIVE {
		b.WriteByte('-')
	}

	for i := DIGITS - 1; i >= 0; i-- {
		if r.FloatActive && r.FloatPos > 0 && i == r.FloatPos-1 {
			b.WriteByte('.')
		}
		b.WriteByte('0' + r.Digit[i])
	}

	return decimal.RequireFromString(b.String())
}

// Write replaces the register's contents with v. Fractional digits
// beyond frac are truncated toward zero, mirroring the machine's fixed
// display width; a value whose remaining digits do not fit the DIGITS
// slots fails with ErrOverflow and leaves the register untouched.
func (r *Register) Write(v decimal.Decimal, frac int) error {
	if frac < 0 {
		frac = 0
	}
	if frac > MAX_FLOAT {
		frac = MAX_FLOAT
	}
	v = v.Truncate(int32(frac))

	whole, part, found := strings.Cut(v.Abs().String(), ".")
	digits := whole + part
	if len(digits) > DIGITS {
		return ErrOverflow
	}

	r.Erase()
	if v.IsNegative() {
		r.Sign = SIGN_NEGATIVE
	}
	r.FloatActive = found
	r.FloatPos = len(part)
	for i := range len(digits) {
		r.Digit[i] = digits[len(digits)-1-i] - '0'
	}

	return nil
}

// String renders the raw slot layout, most significant digit first,
// with the sign and the decimal point position. A trailing point marks
// a pending fractional entry.
func (r *Register) String() string {
	var b strings.Builder

	b.WriteString(r.Sign.String())
	for i := DIGITS - 1; i >= 0; i-- {
		if r.FloatActive && r.FloatPos > 0 && i == r.FloatPos-1 {
			b.WriteByte('.')
		}
		b.WriteByte('0' + r.Digit[i])
	}
	if r.FloatActive && r.FloatPos == 0 {
		b.WriteByte('.')
	}

	return b.String()
}
