package machine

import (
	"errors"

	"github.com/ezrec/p101/translate"
)

var f = translate.From

var (
	ErrRegisterFull    = errors.New(f("register full"))
	ErrDivisionByZero  = errors.New(f("division by zero"))
	ErrNegativeOperand = errors.New(f("negative operand"))
	ErrDecimals        = errors.New(f("invalid decimals"))
)

// ErrKeyInvalid reports a token that is not one key of the alphabet.
type ErrKeyInvalid string

func (ek ErrKeyInvalid) Error() string {
	return f("'%v' is not a key", string(ek))
}

func (ek ErrKeyInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrKeyInvalid)
	return
}
