package bignum

// fineDigits is a Uint re-encoded into base 10^5 digits, used only while
// multiplying. The product of two digits is below 10^10, so hundreds of millions
// of them can be summed into one uint64 column before carrying.
//
// A fineDigits value never escapes Mul.
type fineDigits []uint64

// toFine re-encodes u by rendering it and re-decoding the decimal string in
// the finer radix.
func toFine(u Uint) fineDigits {
	l := u.limbSlice()
	buf := limbRadix.render(make([]byte, 0, limbRadix.renderedLen(l)), l)
	return fineDigits(fineRadix.decode(string(buf)))
}

// toUint is the inverse of toFine. f must already be normalized in the finer
// radix.
func (f fineDigits) toUint() Uint {
	buf := fineRadix.render(make([]byte, 0, fineRadix.renderedLen(f)), f)
	return Uint{l: limbRadix.decode(string(buf))}
}

func (f fineDigits) String() string {
	return string(fineRadix.render(nil, f))
}
