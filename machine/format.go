package machine

import (
	"github.com/shopspring/decimal"
)

// Format renders v for the printer: truncated (never rounded) to
// exactly decimals fractional digits, zero padded on the right when the
// value has fewer, or as plain integer text when decimals is zero. The
// truncation matches register writes, so a printed value re-enters
// unchanged.
func Format(v decimal.Decimal, decimals int) string {
	if decimals <= 0 {
		return v.Truncate(0).String()
	}

	return v.Truncate(int32(decimals)).StringFixed(int32(decimals))
}
