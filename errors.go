package bignum

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("bignum")

// InvalidDigitError is returned when a decimal string contains a byte
// outside '0'-'9', or no digits at all.
type InvalidDigitError struct {
	Input  string
	Offset int
}

func (e *InvalidDigitError) Error() string {
	if len(e.Input) == 0 {
		return "invalid decimal string: no digits"
	}
	return fmt.Sprintf("invalid digit %q at offset %d in %q", e.Input[e.Offset], e.Offset, e.Input)
}
