package register

import (
	"errors"

	"github.com/ezrec/p101/translate"
)

var f = translate.From

var (
	ErrOverflow    = errors.New(f("register overflow"))
	ErrNameUnknown = errors.New(f("unknown register"))
)
